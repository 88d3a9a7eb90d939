package weatherprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	apperrors "agent-relay/internal/common/errors"
	httpx "agent-relay/internal/common/http"
	"agent-relay/internal/common/logger"
)

const (
	ServiceName = "weather-provider"

	maxBodyBytes = 1 << 20
)

type Handler struct {
	config     *Config
	logger     logger.Logger
	errHandler *apperrors.ErrorHandler
	mu         sync.Mutex
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	if config == nil {
		config = LoadConfig()
	}
	l := log.WithFields(map[string]interface{}{"service": ServiceName})
	return &Handler{
		config:     config,
		logger:     l,
		errHandler: apperrors.NewErrorHandler(l),
	}
}

// Register mounts POST /weather.
func (h *Handler) Register(r chi.Router) {
	r.Post("/weather", h.Handle)
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

	output, err := h.execute(r.Context(), &input)
	if err != nil {
		h.errHandler.HandleHTTPError(w, r, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, output)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	profile, ok := Profile(input.Location)
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf(
			"Weather data not available for %s. Available cities: %s",
			input.Location, strings.Join(SupportedLocations(), ", "),
		))
	}

	output := h.sample(profile)

	h.logger.Debug("weather generated", map[string]interface{}{
		"location":    output.Location,
		"temperature": output.Temperature,
		"condition":   output.Condition,
	})

	return output, nil
}

func (h *Handler) sample(p LocationProfile) *Output {
	if h.config.Rand != nil {
		// *rand.Rand is not safe for concurrent use.
		h.mu.Lock()
		defer h.mu.Unlock()
	}

	return &Output{
		Location:    p.Name,
		Temperature: roundTenth(h.uniform(p.TempRange[0], p.TempRange[1])),
		Condition:   p.Conditions[h.intN(len(p.Conditions))],
		Humidity:    p.HumidityRange[0] + h.intN(p.HumidityRange[1]-p.HumidityRange[0]+1),
		WindSpeed:   roundTenth(h.uniform(p.WindRange[0], p.WindRange[1])),
	}
}

func (h *Handler) uniform(lo, hi float64) float64 {
	var f float64
	if h.config.Rand != nil {
		f = h.config.Rand.Float64()
	} else {
		f = rand.Float64()
	}
	return lo + f*(hi-lo)
}

func (h *Handler) intN(n int) int {
	if h.config.Rand != nil {
		return h.config.Rand.IntN(n)
	}
	return rand.IntN(n)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
