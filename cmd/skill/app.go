package main

import (
	"errors"
	"net/http"

	"bitbucket.org/sotavant/alexa-skill/internal/logger"
	"bitbucket.org/sotavant/alexa-skill/internal/models"
	"bitbucket.org/sotavant/alexa-skill/internal/skill"
	"go.uber.org/zap"
)

type app struct {
	handler skill.Handler
}

func newApp(h skill.Handler) *app {
	return &app{handler: h}
}

func (a *app) webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))

		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	logger.Log.Debug("decoding request")
	req, err := models.DecodeRequest(r.Body)
	if err != nil {
		logger.Log.Debug("cannot decode request JSON body", zap.Error(err))

		if errors.Is(err, models.ErrMalformedPayload) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp, err := a.handler.Handle(ctx, req)
	if err != nil {
		if errors.Is(err, skill.ErrUnsupportedRequest) {
			logger.Log.Debug("unsupported request type", zap.String("type", req.Body.Type))
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		logger.Log.Debug("skill failed to handle request",
			zap.String("request_id", req.Body.RequestID),
			zap.Error(err),
		)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if resp == nil {
		logger.Log.Debug("skill returned no response", zap.String("request_id", req.Body.RequestID))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	data, err := models.RenderResponse(resp)
	if err != nil {
		logger.Log.Debug("error encoding response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Log.Debug("error writing response", zap.Error(err))
		return
	}
	logger.Log.Debug("sending HTTP 200 response")
}
