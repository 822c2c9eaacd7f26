package models

// The types below mirror the request keys the platform always sends.
// Pointers stay nil only when a key is absent, so validator's required tag
// checks presence here: an empty string is a value, a missing key is not.

type requestKeys struct {
	Version *string      `json:"version" validate:"required"`
	Session *sessionKeys `json:"session"`
	Body    *bodyKeys    `json:"request" validate:"required"`
	Context *contextKeys `json:"context" validate:"required"`
}

type sessionKeys struct {
	New         *bool            `json:"new" validate:"required"`
	SessionID   *string          `json:"sessionId" validate:"required"`
	Application *applicationKeys `json:"application" validate:"required"`
	User        *userKeys        `json:"user" validate:"required"`
}

type applicationKeys struct {
	ApplicationID *string `json:"applicationId" validate:"required"`
}

type userKeys struct {
	UserID *string `json:"userId" validate:"required"`
}

type deviceKeys struct {
	DeviceID *string `json:"deviceId" validate:"required"`
}

type bodyKeys struct {
	Type      *string     `json:"type" validate:"required"`
	RequestID *string     `json:"requestId" validate:"required"`
	Timestamp *string     `json:"timestamp" validate:"required"`
	Locale    *string     `json:"locale" validate:"required"`
	Intent    *intentKeys `json:"intent"`
}

type contextKeys struct {
	System *systemKeys `json:"System" validate:"required"`
}

type systemKeys struct {
	Device      *deviceKeys      `json:"device"`
	Application *applicationKeys `json:"application"`
	User        *userKeys        `json:"user"`
}

type intentKeys struct {
	Name  *string             `json:"name" validate:"required"`
	Slots map[string]slotKeys `json:"slots" validate:"omitempty,dive"`
}

type slotKeys struct {
	Name        *string         `json:"name" validate:"required"`
	Resolutions *resolutionKeys `json:"resolutions"`
}

type resolutionKeys struct {
	ResolutionsPerAuthority []authorityKeys `json:"resolutionsPerAuthority" validate:"required,dive"`
}

type authorityKeys struct {
	Authority *string            `json:"authority" validate:"required"`
	Status    *statusKeys        `json:"status" validate:"required"`
	Values    []valueWrapperKeys `json:"values" validate:"omitempty,dive"`
}

type statusKeys struct {
	Code *string `json:"code" validate:"required"`
}

type valueWrapperKeys struct {
	Value *valueKeys `json:"value" validate:"required"`
}

type valueKeys struct {
	Name *string `json:"name" validate:"required"`
	ID   *string `json:"id" validate:"required"`
}
