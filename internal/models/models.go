package models

// Request describes an inbound call from the voice platform.
// See https://developer.amazon.com/docs/custom-skills/request-and-response-json-reference.html
type Request struct {
	Version string      `json:"version"`
	// Session is nil for session-less request types.
	Session *Session    `json:"session,omitempty"`
	Body    RequestBody `json:"request"`
	Context Context     `json:"context"`
}

type Session struct {
	New         bool              `json:"new"`
	SessionID   string            `json:"sessionId"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	Application Application       `json:"application"`
	User        User              `json:"user"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken,omitempty"`
}

type Device struct {
	DeviceID            string         `json:"deviceId"`
	SupportedInterfaces map[string]any `json:"supportedInterfaces,omitempty"`
}

// RequestBody is the event itself, sent under the "request" key.
type RequestBody struct {
	Type        string  `json:"type"`
	RequestID   string  `json:"requestId"`
	Timestamp   string  `json:"timestamp"`
	Locale      string  `json:"locale"`
	Intent      *Intent `json:"intent,omitempty"`
	Reason      string  `json:"reason,omitempty"`
	DialogState string  `json:"dialogState,omitempty"`
}

type Context struct {
	System      *System      `json:"System"`
	AudioPlayer *AudioPlayer `json:"AudioPlayer,omitempty"`
}

type System struct {
	APIAccessToken string       `json:"apiAccessToken,omitempty"`
	APIEndpoint    string       `json:"apiEndpoint,omitempty"`
	Device         *Device      `json:"device,omitempty"`
	Application    *Application `json:"application,omitempty"`
	User           *User        `json:"user,omitempty"`
}

type AudioPlayer struct {
	Token                string `json:"token,omitempty"`
	OffsetInMilliseconds *int64 `json:"offsetInMilliseconds,omitempty"`
	PlayerActivity       string `json:"playerActivity,omitempty"`
}

// Confirmation statuses of intents and slots.
const (
	ConfirmationNone      = "NONE"
	ConfirmationConfirmed = "CONFIRMED"
	ConfirmationDenied    = "DENIED"
)

type Intent struct {
	Name               string          `json:"name"`
	ConfirmationStatus string          `json:"confirmationStatus,omitempty"`
	Slots              map[string]Slot `json:"slots,omitempty"`
}

// Slot returns the slot with exactly the given name.
func (i *Intent) Slot(name string) (Slot, bool) {
	s, ok := i.Slots[name]
	return s, ok
}

type Slot struct {
	Name string `json:"name"`

	// Value is empty when the user did not fill the slot.
	Value              string      `json:"value,omitempty"`
	ConfirmationStatus string      `json:"confirmationStatus,omitempty"`
	Source             string      `json:"source,omitempty"`
	Resolutions        *Resolution `json:"resolutions,omitempty"`
}

// ResolvedValue returns the first entity value matched by any authority.
func (s *Slot) ResolvedValue() (Value, bool) {
	if s.Resolutions == nil {
		return Value{}, false
	}
	for _, rpa := range s.Resolutions.ResolutionsPerAuthority {
		if rpa.Status.Code == StatusSuccessMatch && len(rpa.Values) > 0 {
			return rpa.Values[0].Value, true
		}
	}
	return Value{}, false
}

// Entity resolution status codes.
const (
	StatusSuccessMatch   = "ER_SUCCESS_MATCH"
	StatusSuccessNoMatch = "ER_SUCCESS_NO_MATCH"
	StatusErrorTimeout   = "ER_ERROR_TIMEOUT"
	StatusErrorException = "ER_ERROR_EXCEPTION"
)

type Resolution struct {
	ResolutionsPerAuthority []ResolutionPerAuthority `json:"resolutionsPerAuthority"`
}

type ResolutionPerAuthority struct {
	Authority string         `json:"authority"`
	Status    Status         `json:"status"`
	Values    []ValueWrapper `json:"values,omitempty"`
}

type Status struct {
	Code string `json:"code"`
}

type ValueWrapper struct {
	Value Value `json:"value"`
}

type Value struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// RequestType classifies the request by its type tag.
func (r *Request) RequestType() RequestType {
	return ParseRequestType(r.Body.Type)
}

// Locale classifies the request locale.
func (r *Request) Locale() Locale {
	return ParseLocale(r.Body.Locale)
}

// IntentType classifies the intent. Requests without an intent yield IntentNone.
func (r *Request) IntentType() IntentType {
	if r.Body.Intent == nil {
		return IntentType{Kind: IntentNone}
	}
	return ParseIntentType(r.Body.Intent.Name)
}

// SlotValue returns the value of the named slot of the request intent.
func (r *Request) SlotValue(name string) (string, bool) {
	if r.Body.Intent == nil {
		return "", false
	}
	s, ok := r.Body.Intent.Slot(name)
	if !ok {
		return "", false
	}
	return s.Value, true
}

// AttributeValue returns the session attribute stored under key.
func (r *Request) AttributeValue(key string) (string, bool) {
	if r.Session == nil || r.Session.Attributes == nil {
		return "", false
	}
	v, ok := r.Session.Attributes[key]
	return v, ok
}

// IsNewSession reports whether this is the first turn of a session.
// Session-less requests are never new.
func (r *Request) IsNewSession() bool {
	return r.Session != nil && r.Session.New
}
