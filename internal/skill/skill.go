package skill

import (
	"context"
	"errors"

	"bitbucket.org/sotavant/alexa-skill/internal/models"
)

// ErrUnsupportedRequest is returned by a Handler for request types it does not serve.
var ErrUnsupportedRequest = errors.New("unsupported request type")

//go:generate mockgen -destination=mock/handler.go -package=mock bitbucket.org/sotavant/alexa-skill/internal/skill Handler

// Handler turns one request into one response.
type Handler interface {
	Handle(ctx context.Context, req *models.Request) (*models.Response, error)
}

type HandlerFunc func(ctx context.Context, req *models.Request) (*models.Response, error)

func (f HandlerFunc) Handle(ctx context.Context, req *models.Request) (*models.Response, error) {
	return f(ctx, req)
}
