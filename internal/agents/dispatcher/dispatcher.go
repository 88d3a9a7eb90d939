package dispatcher

import (
	"context"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	apperrors "agent-relay/internal/common/errors"
	httpx "agent-relay/internal/common/http"
	"agent-relay/internal/common/logger"
	"agent-relay/internal/common/metrics"
	"agent-relay/internal/models"
)

const ServiceName = "dispatcher"

type Dispatcher struct {
	config *Config
	client *httpx.Client
	logger logger.Logger
}

func New(config *Config, log logger.Logger) *Dispatcher {
	if config == nil {
		config = LoadConfig()
	}
	return &Dispatcher{
		config: config,
		client: httpx.NewClient(config.Timeout),
		logger: log.WithFields(map[string]interface{}{"service": ServiceName}),
	}
}

// Dispatch classifies query, calls at most one relay and returns a tagged
// result. Failures never escape as errors; they become ResultError.
func (d *Dispatcher) Dispatch(ctx context.Context, query string) *Result {
	requestID := uuid.New().String()
	ctx = context.WithValue(ctx, middleware.RequestIDKey, requestID)

	intent := Classify(query)
	log := d.logger.WithFields(map[string]interface{}{
		"requestId": requestID,
		"intent":    string(intent),
	})

	var result *Result
	switch intent {
	case models.IntentWeather:
		result = d.weather(ctx, requestID, ExtractLocation(query))
	case models.IntentJoke:
		result = d.joke(ctx, requestID)
	default:
		result = errorResult(requestID, apperrors.NewUnknownIntentError(query).Message)
	}

	metrics.DispatchesTotal.WithLabelValues(string(intent), string(result.Type)).Inc()
	if result.Type == ResultError {
		log.Warn("dispatch failed", map[string]interface{}{"message": result.Message})
	} else {
		log.Info("dispatch completed", nil)
	}
	return result
}

func (d *Dispatcher) weather(ctx context.Context, requestID, location string) *Result {
	var out models.WeatherResponse
	req := models.WeatherRequest{Type: models.RequestTypeWeather, Location: location}
	if err := d.client.PostJSON(ctx, relayURL(d.config.WeatherRelayURL), req, &out); err != nil {
		return errorResult(requestID, "Error getting weather data: "+err.Error())
	}
	return &Result{Type: ResultWeather, RequestID: requestID, Weather: &out}
}

func (d *Dispatcher) joke(ctx context.Context, requestID string) *Result {
	var out models.JokeResponse
	req := models.JokeRequest{Type: models.RequestTypeJoke}
	if err := d.client.PostJSON(ctx, relayURL(d.config.JokeRelayURL), req, &out); err != nil {
		return errorResult(requestID, "Error getting joke: "+err.Error())
	}
	return &Result{Type: ResultJoke, RequestID: requestID, Joke: &out}
}

func (d *Dispatcher) Close() error {
	return d.client.Close()
}

func relayURL(base string) string {
	return strings.TrimRight(base, "/") + "/"
}
