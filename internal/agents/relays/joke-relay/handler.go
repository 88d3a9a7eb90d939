package jokerelay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "agent-relay/internal/common/errors"
	httpx "agent-relay/internal/common/http"
	"agent-relay/internal/common/logger"
	"agent-relay/internal/common/metrics"
	"agent-relay/internal/models"
)

const (
	ServiceName = "joke-relay"

	maxBodyBytes = 1 << 20
)

type Handler struct {
	config     *Config
	newClient  ClientFactory
	logger     logger.Logger
	errHandler *apperrors.ErrorHandler
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	if config == nil {
		config = LoadConfig()
	}
	return NewHandlerWithClientFactory(config, func() ProviderClient {
		return NewProviderClient(config.ProviderURL, config.Timeout)
	}, log)
}

func NewHandlerWithClientFactory(config *Config, factory ClientFactory, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"service": ServiceName})
	return &Handler{
		config:     config,
		newClient:  factory,
		logger:     l,
		errHandler: apperrors.NewErrorHandler(l),
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/", h.Handle)
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.errHandler.HandleHTTPError(w, r, apperrors.NewBadRequestError(fmt.Sprintf("read body: %v", err)))
		return
	}

	if result := inputSchema.ValidateBytes(body); !result.Valid {
		h.errHandler.HandleHTTPError(w, r, apperrors.NewBadRequestError(result.Summary()))
		return
	}

	var input Input
	if err := json.Unmarshal(body, &input); err != nil {
		h.errHandler.HandleHTTPError(w, r, apperrors.NewBadRequestError(fmt.Sprintf("parse input: %v", err)))
		return
	}

	output, err := h.Execute(r.Context(), &input)
	if err != nil {
		h.errHandler.HandleHTTPError(w, r, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, output)
}

// Execute checks the type tag, fetches one joke and returns it reshaped.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Type != models.RequestTypeJoke {
		return nil, apperrors.NewBadRequestError("Invalid request type")
	}

	log := logger.WithRequestID(ctx, h.logger)

	client := h.newClient()
	defer func() {
		if err := client.Close(); err != nil {
			log.Warn("failed to close provider client", map[string]interface{}{"error": err.Error()})
		}
	}()

	payload, err := client.GetJoke(ctx)
	if err != nil {
		return nil, fail(log, err)
	}
	if result := providerSchema.ValidateDocument(payload); !result.Valid {
		return nil, fail(log, fmt.Errorf("unexpected provider response: %s", result.Summary()))
	}

	output := &Output{
		Setup:     payload["setup"].(string),
		Punchline: payload["punchline"].(string),
		Category:  payload["type"].(string),
	}
	log.Debug("joke relayed", map[string]interface{}{"category": output.Category})
	return output, nil
}

func fail(log logger.Logger, err error) error {
	stdErr := apperrors.NewInternalError(err)
	metrics.DownstreamCallsFailed.WithLabelValues(ServiceName, string(stdErr.Code)).Inc()
	log.WithError(err).Error("provider call failed", nil)
	return stdErr
}
