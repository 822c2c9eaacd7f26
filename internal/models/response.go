package models

import "fmt"

// Version is the only response format version the platform accepts.
const Version = "1.0"

// Response describes the reply sent back to the platform.
// See https://developer.amazon.com/docs/custom-skills/request-and-response-json-reference.html#response-format
type Response struct {
	Version           string            `json:"version"`
	SessionAttributes map[string]string `json:"sessionAttributes,omitempty"`
	Body              ResponseBody      `json:"response"`
}

type ResponseBody struct {
	OutputSpeech     *Speech   `json:"outputSpeech,omitempty"`
	Card             *Card     `json:"card,omitempty"`
	Reprompt         *Reprompt `json:"reprompt,omitempty"`
	ShouldEndSession bool      `json:"shouldEndSession"`
}

type Reprompt struct {
	OutputSpeech Speech `json:"outputSpeech"`
}

// NewResponse returns a bare response with only shouldEndSession set.
func NewResponse(shouldEndSession bool) *Response {
	return &Response{
		Version: Version,
		Body:    ResponseBody{ShouldEndSession: shouldEndSession},
	}
}

// SimpleResponse ends the session, speaking text and showing it on a Simple card.
func SimpleResponse(title, text string) *Response {
	return NewResponse(true).
		WithCard(SimpleCard(title, text)).
		WithSpeech(PlainSpeech(text))
}

// EndSession ends the session silently.
func EndSession() *Response {
	return NewResponse(true)
}

func (r *Response) WithSpeech(s Speech) *Response {
	r.Body.OutputSpeech = &s
	return r
}

func (r *Response) WithCard(c Card) *Response {
	r.Body.Card = &c
	return r
}

func (r *Response) WithReprompt(s Speech) *Response {
	r.Body.Reprompt = &Reprompt{OutputSpeech: s}
	return r
}

// AddAttribute sets a session attribute. The platform sends the attributes
// back with the next request of the same session.
func (r *Response) AddAttribute(key, value string) *Response {
	if r.SessionAttributes == nil {
		r.SessionAttributes = make(map[string]string)
	}
	r.SessionAttributes[key] = value
	return r
}

type SpeechType string

const (
	SpeechPlainText SpeechType = "PlainText"
	SpeechSSML      SpeechType = "SSML"
)

type PlayBehavior string

const (
	PlayEnqueue         PlayBehavior = "ENQUEUE"
	PlayReplaceAll      PlayBehavior = "REPLACE_ALL"
	PlayReplaceEnqueued PlayBehavior = "REPLACE_ENQUEUED"
)

// Speech is output speech. The zero value is not valid; use PlainSpeech or SSMLSpeech.
type Speech struct {
	kind         SpeechType
	value        string
	playBehavior PlayBehavior
}

func PlainSpeech(text string) Speech {
	return Speech{kind: SpeechPlainText, value: text}
}

// SSMLSpeech wraps ssml as is, including its <speak> element.
func SSMLSpeech(ssml string) Speech {
	return Speech{kind: SpeechSSML, value: ssml}
}

func (s Speech) WithPlayBehavior(b PlayBehavior) Speech {
	s.playBehavior = b
	return s
}

func (s Speech) Type() SpeechType { return s.kind }

func (s Speech) PlayBehavior() PlayBehavior { return s.playBehavior }

func (s Speech) Text() string {
	if s.kind != SpeechPlainText {
		return ""
	}
	return s.value
}

func (s Speech) SSML() string {
	if s.kind != SpeechSSML {
		return ""
	}
	return s.value
}

type speechJSON struct {
	Type         SpeechType   `json:"type"`
	Text         *string      `json:"text,omitempty"`
	SSML         *string      `json:"ssml,omitempty"`
	PlayBehavior PlayBehavior `json:"playBehavior,omitempty"`
}

func (s Speech) MarshalJSON() ([]byte, error) {
	out := speechJSON{Type: s.kind, PlayBehavior: s.playBehavior}
	v := s.value
	switch s.kind {
	case SpeechPlainText:
		out.Text = &v
	case SpeechSSML:
		out.SSML = &v
	default:
		return nil, fmt.Errorf("unknown speech type %q", s.kind)
	}
	return json.Marshal(out)
}

func (s *Speech) UnmarshalJSON(data []byte) error {
	var in speechJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	var v *string
	switch in.Type {
	case SpeechPlainText:
		v = in.Text
	case SpeechSSML:
		v = in.SSML
	default:
		return fmt.Errorf("unknown speech type %q", in.Type)
	}
	if v == nil {
		return fmt.Errorf("%s speech without its text", in.Type)
	}
	*s = Speech{kind: in.Type, value: *v, playBehavior: in.PlayBehavior}
	return nil
}

type CardType string

const (
	CardSimple                   CardType = "Simple"
	CardStandard                 CardType = "Standard"
	CardLinkAccount              CardType = "LinkAccount"
	CardAskForPermissionsConsent CardType = "AskForPermissionsConsent"
)

// Card is a card shown in the companion app. Which fields are sent depends on
// the card type, so cards are only built through the constructors below.
type Card struct {
	kind        CardType
	title       string
	body        string
	image       *Image
	permissions []string
}

func SimpleCard(title, content string) Card {
	return Card{kind: CardSimple, title: title, body: content}
}

func StandardCard(title, text string, image Image) Card {
	return Card{kind: CardStandard, title: title, body: text, image: &image}
}

// LinkAccountCard asks the user to link their account.
func LinkAccountCard() Card {
	return Card{kind: CardLinkAccount}
}

// AskForPermissionsCard asks the user to grant the given permission scopes.
func AskForPermissionsCard(permissions []string) Card {
	p := make([]string, len(permissions))
	copy(p, permissions)
	return Card{kind: CardAskForPermissionsConsent, permissions: p}
}

func (c Card) Type() CardType { return c.kind }

func (c Card) Title() string { return c.title }

// Content is the body of a Simple card.
func (c Card) Content() string {
	if c.kind != CardSimple {
		return ""
	}
	return c.body
}

// Text is the body of a Standard card.
func (c Card) Text() string {
	if c.kind != CardStandard {
		return ""
	}
	return c.body
}

func (c Card) Image() (Image, bool) {
	if c.image == nil {
		return Image{}, false
	}
	return *c.image, true
}

func (c Card) Permissions() []string {
	p := make([]string, len(c.permissions))
	copy(p, c.permissions)
	return p
}

type cardJSON struct {
	Type        CardType `json:"type"`
	Title       *string  `json:"title,omitempty"`
	Content     *string  `json:"content,omitempty"`
	Text        *string  `json:"text,omitempty"`
	Image       *Image   `json:"image,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

func (c Card) MarshalJSON() ([]byte, error) {
	out := cardJSON{Type: c.kind}
	title, body := c.title, c.body
	switch c.kind {
	case CardSimple:
		out.Title, out.Content = &title, &body
	case CardStandard:
		out.Title, out.Text, out.Image = &title, &body, c.image
	case CardLinkAccount:
	case CardAskForPermissionsConsent:
		out.Permissions = c.permissions
	default:
		return nil, fmt.Errorf("unknown card type %q", c.kind)
	}
	return json.Marshal(out)
}

func (c *Card) UnmarshalJSON(data []byte) error {
	var in cardJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	switch in.Type {
	case CardSimple:
		*c = SimpleCard(deref(in.Title), deref(in.Content))
	case CardStandard:
		*c = Card{kind: CardStandard, title: deref(in.Title), body: deref(in.Text), image: in.Image}
	case CardLinkAccount:
		*c = LinkAccountCard()
	case CardAskForPermissionsConsent:
		*c = AskForPermissionsCard(in.Permissions)
	default:
		return fmt.Errorf("unknown card type %q", in.Type)
	}
	return nil
}

// Image holds the card image URLs. Both are optional.
type Image struct {
	SmallImageURL string `json:"smallImageUrl,omitempty"`
	LargeImageURL string `json:"largeImageUrl,omitempty"`
}

func NewImage() Image {
	return Image{}
}

func (i Image) WithSmallImageURL(url string) Image {
	i.SmallImageURL = url
	return i
}

func (i Image) WithLargeImageURL(url string) Image {
	i.LargeImageURL = url
	return i
}
