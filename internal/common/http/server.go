package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apperrors "agent-relay/internal/common/errors"
	"agent-relay/internal/common/logger"
	"agent-relay/internal/common/metrics"
	"agent-relay/internal/common/observability"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	Service       string
	Logger        logger.Logger
	Observability *observability.Observability
}

// NewRouter returns a chi router carrying request IDs, access logging,
// request metrics, panic recovery and the /health and /ready probes.
func NewRouter(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(instrument(opts))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		RespondError(w, http.StatusNotFound, apperrors.ErrCodeNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		RespondError(w, http.StatusMethodNotAllowed, apperrors.ErrCodeBadRequest, "Method Not Allowed")
	})

	r.Get("/health", probe("healthy"))
	r.Get("/ready", probe("ready"))

	return r
}

// RespondJSON writes v as a JSON body with the given status.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError writes the standard {"code","detail"} error body.
func RespondError(w http.ResponseWriter, status int, code apperrors.ErrorCode, detail string) {
	RespondJSON(w, status, apperrors.ErrorBody{Code: code, Detail: detail})
}

func probe(status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, http.StatusOK, map[string]string{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

func instrument(opts RouterOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			metrics.RequestsActive.WithLabelValues(opts.Service).Inc()
			defer metrics.RequestsActive.WithLabelValues(opts.Service).Dec()

			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			statusLabel := strconv.Itoa(status)
			metrics.RequestsTotal.WithLabelValues(opts.Service, route, statusLabel).Inc()
			metrics.RequestDuration.WithLabelValues(opts.Service, route).Observe(duration.Seconds())
			opts.Observability.RecordRequest(r.Context(), opts.Service, statusLabel, duration)

			if opts.Logger != nil {
				opts.Logger.Info("request handled", map[string]interface{}{
					"method":     r.Method,
					"path":       r.URL.Path,
					"status":     status,
					"durationMs": duration.Milliseconds(),
					"requestId":  middleware.GetReqID(r.Context()),
				})
			}
		})
	}
}
