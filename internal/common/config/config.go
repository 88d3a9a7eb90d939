// internal/common/config/config.go
package config

import "time"

// Service names used as keys under `services`.
const (
	WeatherProviderService = "weather-provider"
	JokeProviderService    = "joke-provider"
	WeatherRelayService    = "weather-relay"
	JokeRelayService       = "joke-relay"
)

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig                `mapstructure:"app"`
	Services   map[string]ServiceConfig `mapstructure:"services"`
	Endpoints  EndpointsConfig          `mapstructure:"endpoints"`
	Dispatcher DispatcherConfig         `mapstructure:"dispatcher"`
	Logging    LoggingConfig            `mapstructure:"logging"`
	Metrics    MetricsConfig            `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServiceConfig holds the listener settings of one provider or relay.
type ServiceConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
	Timeout int    `mapstructure:"timeout"` // milliseconds, applied to downstream calls
}

// EndpointsConfig holds the base URLs each hop calls.
type EndpointsConfig struct {
	WeatherProviderURL string `mapstructure:"weather_provider_url"`
	JokeProviderURL    string `mapstructure:"joke_provider_url"`
	WeatherRelayURL    string `mapstructure:"weather_relay_url"`
	JokeRelayURL       string `mapstructure:"joke_relay_url"`
}

type DispatcherConfig struct {
	Timeout int `mapstructure:"timeout"` // milliseconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
