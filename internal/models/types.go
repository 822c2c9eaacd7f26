package models

// RequestKind enumerates the request types the platform documents.
// Anything else is RequestOther.
type RequestKind int

const (
	RequestOther RequestKind = iota
	RequestLaunch
	RequestIntent
	RequestSessionEnded
	RequestCanFulfillIntent
)

var requestKinds = map[string]RequestKind{
	"LaunchRequest":           RequestLaunch,
	"IntentRequest":           RequestIntent,
	"SessionEndedRequest":     RequestSessionEnded,
	"CanFulfillIntentRequest": RequestCanFulfillIntent,
}

// RequestType is a classified request type tag. Raw keeps the wire value,
// which is the only way to tell two RequestOther values apart.
type RequestType struct {
	Kind RequestKind
	Raw  string
}

func ParseRequestType(s string) RequestType {
	return RequestType{Kind: requestKinds[s], Raw: s}
}

func (t RequestType) String() string {
	return t.Raw
}

// IntentKind enumerates the built-in intents. Custom intents are IntentUser.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentHelp
	IntentCancel
	IntentFallback
	IntentLoopOff
	IntentLoopOn
	IntentNavigateHome
	IntentNext
	IntentNo
	IntentPause
	IntentPrevious
	IntentRepeat
	IntentResume
	IntentSelect
	IntentShuffleOff
	IntentShuffleOn
	IntentStartOver
	IntentStop
	IntentYes
	IntentUser
)

// BuiltinIntentPrefix is the namespace reserved for platform intents.
const BuiltinIntentPrefix = "AMAZON."

var builtinIntents = map[string]IntentKind{
	BuiltinIntentPrefix + "HelpIntent":         IntentHelp,
	BuiltinIntentPrefix + "CancelIntent":       IntentCancel,
	BuiltinIntentPrefix + "FallbackIntent":     IntentFallback,
	BuiltinIntentPrefix + "LoopOffIntent":      IntentLoopOff,
	BuiltinIntentPrefix + "LoopOnIntent":       IntentLoopOn,
	BuiltinIntentPrefix + "NavigateHomeIntent": IntentNavigateHome,
	BuiltinIntentPrefix + "NextIntent":         IntentNext,
	BuiltinIntentPrefix + "NoIntent":           IntentNo,
	BuiltinIntentPrefix + "PauseIntent":        IntentPause,
	BuiltinIntentPrefix + "PreviousIntent":     IntentPrevious,
	BuiltinIntentPrefix + "RepeatIntent":       IntentRepeat,
	BuiltinIntentPrefix + "ResumeIntent":       IntentResume,
	BuiltinIntentPrefix + "SelectIntent":       IntentSelect,
	BuiltinIntentPrefix + "ShuffleOffIntent":   IntentShuffleOff,
	BuiltinIntentPrefix + "ShuffleOnIntent":    IntentShuffleOn,
	BuiltinIntentPrefix + "StartOverIntent":    IntentStartOver,
	BuiltinIntentPrefix + "StopIntent":         IntentStop,
	BuiltinIntentPrefix + "YesIntent":          IntentYes,
}

// IntentType is a classified intent name. For IntentUser, Name carries the
// custom intent name verbatim.
type IntentType struct {
	Kind IntentKind
	Name string
}

// UserIntent returns the IntentType of a custom intent.
func UserIntent(name string) IntentType {
	return IntentType{Kind: IntentUser, Name: name}
}

// ParseIntentType matches name exactly against the built-in table.
func ParseIntentType(name string) IntentType {
	if k, ok := builtinIntents[name]; ok {
		return IntentType{Kind: k, Name: name}
	}
	return UserIntent(name)
}

func (t IntentType) IsBuiltin() bool {
	return t.Kind != IntentNone && t.Kind != IntentUser
}

func (t IntentType) String() string {
	return t.Name
}

// Locale is one of the platform locales this package knows about.
type Locale int

const (
	LocaleUnknown Locale = iota
	LocaleItalian
	LocaleGerman
	LocaleAustralianEnglish
	LocaleCanadianEnglish
	LocaleBritishEnglish
	LocaleIndianEnglish
	LocaleAmericanEnglish
	LocaleJapanese
)

var locales = map[string]Locale{
	"it-IT": LocaleItalian,
	"de-DE": LocaleGerman,
	"en-AU": LocaleAustralianEnglish,
	"en-CA": LocaleCanadianEnglish,
	"en-GB": LocaleBritishEnglish,
	"en-IN": LocaleIndianEnglish,
	"en-US": LocaleAmericanEnglish,
	"ja-JP": LocaleJapanese,
}

func ParseLocale(tag string) Locale {
	return locales[tag]
}

// IsEnglish reports whether l is one of the English-speaking locales.
func (l Locale) IsEnglish() bool {
	switch l {
	case LocaleAmericanEnglish, LocaleAustralianEnglish, LocaleCanadianEnglish,
		LocaleBritishEnglish, LocaleIndianEnglish:
		return true
	}
	return false
}

var localeTags = [...]string{
	LocaleUnknown:           "unknown",
	LocaleItalian:           "it-IT",
	LocaleGerman:            "de-DE",
	LocaleAustralianEnglish: "en-AU",
	LocaleCanadianEnglish:   "en-CA",
	LocaleBritishEnglish:    "en-GB",
	LocaleIndianEnglish:     "en-IN",
	LocaleAmericanEnglish:   "en-US",
	LocaleJapanese:          "ja-JP",
}

func (l Locale) String() string {
	if l < 0 || int(l) >= len(localeTags) {
		return localeTags[LocaleUnknown]
	}
	return localeTags[l]
}
