// cmd/service-manager/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	jokeprovider "agent-relay/internal/agents/providers/joke-provider"
	weatherprovider "agent-relay/internal/agents/providers/weather-provider"
	jokerelay "agent-relay/internal/agents/relays/joke-relay"
	weatherrelay "agent-relay/internal/agents/relays/weather-relay"
	"agent-relay/internal/common/config"
	httpx "agent-relay/internal/common/http"
	"agent-relay/internal/common/logger"
	"agent-relay/internal/common/observability"
)

const shutdownTimeout = 30 * time.Second

// service is one provider or relay mounted on its own listener.
type service struct {
	name     string
	register func(chi.Router)
}

func main() {
	bootLog := logger.New("info", "console")

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting service manager...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New("service-manager")
	defer obs.Shutdown()

	services := buildServices(cfg, log)

	var (
		servers []*http.Server
		wg      sync.WaitGroup
	)

	for _, svc := range services {
		if !config.IsServiceEnabled(cfg, svc.name) {
			zapLog.Info("Service disabled", zap.String("service", svc.name))
			continue
		}
		svcCfg := config.GetServiceConfig(cfg, svc.name)

		r := httpx.NewRouter(httpx.RouterOptions{
			Service:       svc.name,
			Logger:        log.WithFields(map[string]interface{}{"service": svc.name}),
			Observability: obs,
		})
		svc.register(r)

		servers = append(servers, serve(&wg, zapLog, svc.name, svcCfg.Address, r))
	}

	if cfg.Metrics.Enabled {
		r := httpx.NewRouter(httpx.RouterOptions{Service: "service-manager"})
		r.Handle("/metrics", promhttp.Handler())
		servers = append(servers, serve(&wg, zapLog, "metrics", cfg.Metrics.Address, r))
	}

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zapLog.Error("Error shutting down listener", zap.String("address", srv.Addr), zap.Error(err))
		}
	}
	wg.Wait()

	zapLog.Info("Service manager stopped gracefully")
}

func buildServices(cfg *config.Config, log logger.Logger) []service {
	weatherRelay := weatherrelay.NewHandler(&weatherrelay.Config{
		ProviderURL: cfg.Endpoints.WeatherProviderURL,
		Timeout:     config.GetDuration(config.GetServiceConfig(cfg, config.WeatherRelayService).Timeout),
	}, log)
	jokeRelay := jokerelay.NewHandler(&jokerelay.Config{
		ProviderURL: cfg.Endpoints.JokeProviderURL,
		Timeout:     config.GetDuration(config.GetServiceConfig(cfg, config.JokeRelayService).Timeout),
	}, log)

	return []service{
		{name: config.WeatherProviderService, register: weatherprovider.NewHandler(nil, log).Register},
		{name: config.JokeProviderService, register: jokeprovider.NewHandler(nil, log).Register},
		{name: config.WeatherRelayService, register: weatherRelay.Register},
		{name: config.JokeRelayService, register: jokeRelay.Register},
	}
}

func serve(wg *sync.WaitGroup, zapLog *zap.Logger, name, addr string, h http.Handler) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		zapLog.Info("Listener started", zap.String("service", name), zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("Listener failed", zap.String("service", name), zap.Error(err))
		}
	}()

	return srv
}
