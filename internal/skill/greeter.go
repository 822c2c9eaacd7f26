package skill

import (
	"context"
	"fmt"

	"bitbucket.org/sotavant/alexa-skill/internal/models"
)

const (
	greeterTitle = "hello"

	// nameAttribute remembers the last name heard within a session.
	nameAttribute = "name"
	nameSlot      = "name"

	welcomeText  = "Welcome. Tell me: say hello to someone."
	helpText     = "To say hello, tell me: say hello to someone."
	fallbackText = "Sorry, I can only say hello."
)

// Greeter says hello, in the user's language where it knows one.
type Greeter struct{}

func NewGreeter() *Greeter {
	return &Greeter{}
}

func (g *Greeter) Handle(_ context.Context, req *models.Request) (*models.Response, error) {
	switch req.RequestType().Kind {
	case models.RequestLaunch:
		return models.NewResponse(false).
			WithSpeech(models.PlainSpeech(welcomeText)).
			WithReprompt(models.PlainSpeech(helpText)), nil
	case models.RequestSessionEnded:
		return models.EndSession(), nil
	case models.RequestIntent:
		return g.handleIntent(req), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedRequest, req.RequestType())
}

func (g *Greeter) handleIntent(req *models.Request) *models.Response {
	switch req.IntentType().Kind {
	case models.IntentUser:
		return g.hello(req)
	case models.IntentHelp:
		return models.NewResponse(false).
			WithCard(models.SimpleCard(greeterTitle, helpText)).
			WithSpeech(models.PlainSpeech(helpText))
	case models.IntentCancel, models.IntentStop:
		return models.EndSession()
	}
	return models.NewResponse(false).
		WithSpeech(models.PlainSpeech(fallbackText)).
		WithReprompt(models.PlainSpeech(helpText))
}

func (g *Greeter) hello(req *models.Request) *models.Response {
	switch req.Locale() {
	case models.LocaleAustralianEnglish:
		return models.SimpleResponse(greeterTitle, "G'day mate")
	case models.LocaleGerman:
		return models.SimpleResponse(greeterTitle, "Hallo Welt")
	case models.LocaleJapanese:
		return models.SimpleResponse(greeterTitle, "こんにちは世界")
	}

	name, ok := req.SlotValue(nameSlot)
	if !ok || name == "" {
		name, ok = req.AttributeValue(nameAttribute)
	}
	if !ok || name == "" {
		return models.SimpleResponse(greeterTitle, "hello world")
	}

	text := "hello " + name
	if req.IsNewSession() {
		text = "Welcome. " + text
	}
	return models.SimpleResponse(greeterTitle, text).
		AddAttribute(nameAttribute, name)
}
