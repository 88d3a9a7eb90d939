package jokeprovider

import (
	"context"
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	httpx "agent-relay/internal/common/http"
	"agent-relay/internal/common/logger"
)

const ServiceName = "joke-provider"

type Handler struct {
	config *Config
	logger logger.Logger
	mu     sync.Mutex
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	if config == nil {
		config = LoadConfig()
	}
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"service": ServiceName}),
	}
}

// Register mounts GET /joke.
func (h *Handler) Register(r chi.Router) {
	r.Get("/joke", h.Handle)
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	httpx.RespondJSON(w, http.StatusOK, h.Execute(r.Context()))
}

// Execute picks a joke uniformly at random. It cannot fail.
func (h *Handler) Execute(_ context.Context) *Output {
	joke := jokes[h.pick(len(jokes))]

	h.logger.Debug("joke selected", map[string]interface{}{
		"category": joke.Category,
	})

	return &joke
}

func (h *Handler) pick(n int) int {
	if h.config.Rand == nil {
		return rand.IntN(n)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.config.Rand.IntN(n)
}
