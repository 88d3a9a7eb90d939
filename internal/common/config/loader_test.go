package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	path := writeConfig(t, "app:\n  name: agent-relay\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "agent-relay", cfg.App.Name)
	assert.Equal(t, "http://localhost:8001", cfg.Endpoints.WeatherProviderURL)
	assert.Equal(t, "http://localhost:8004", cfg.Endpoints.JokeRelayURL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, ":8080", cfg.Metrics.Address)

	for name, addr := range defaultAddresses {
		svc := GetServiceConfig(cfg, name)
		assert.True(t, svc.Enabled, name)
		assert.Equal(t, addr, svc.Address, name)
		assert.Equal(t, defaultTimeoutMs, svc.Timeout, name)
	}
	assert.Equal(t, 10*time.Second, GetDuration(cfg.Dispatcher.Timeout))
}

func TestLoadFromFile_Overrides(t *testing.T) {
	path := writeConfig(t, `
services:
  joke-relay:
    enabled: false
  weather-relay:
    address: ":9003"
    timeout: 2500
endpoints:
  weather_relay_url: "${TEST_WEATHER_RELAY_URL}"
logging:
  level: debug
  format: console
`)
	t.Setenv("TEST_WEATHER_RELAY_URL", "http://relay.internal:9003")
	t.Setenv("ENDPOINTS_JOKE_PROVIDER_URL", "http://jokes.internal:9002")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.False(t, IsServiceEnabled(cfg, JokeRelayService))
	assert.True(t, IsServiceEnabled(cfg, WeatherProviderService))

	relay := GetServiceConfig(cfg, WeatherRelayService)
	assert.Equal(t, ":9003", relay.Address)
	assert.Equal(t, 2500*time.Millisecond, GetDuration(relay.Timeout))

	assert.Equal(t, "http://relay.internal:9003", cfg.Endpoints.WeatherRelayURL)
	assert.Equal(t, "http://jokes.internal:9002", cfg.Endpoints.JokeProviderURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		expect string
	}{
		{
			name:   "relative endpoint",
			body:   "endpoints:\n  joke_relay_url: localhost:8004\n",
			expect: "endpoints.joke_relay_url",
		},
		{
			name:   "unknown log level",
			body:   "logging:\n  level: loud\n",
			expect: "logging.level",
		},
		{
			name:   "negative timeout",
			body:   "services:\n  joke-provider:\n    timeout: -1\n",
			expect: "services.joke-provider.timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expect)
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestGetServiceConfig_Unknown(t *testing.T) {
	cfg := &Config{Services: map[string]ServiceConfig{}}
	svc := GetServiceConfig(cfg, "something-else")
	assert.True(t, svc.Enabled)
	assert.Equal(t, defaultTimeoutMs, svc.Timeout)
	assert.True(t, IsServiceEnabled(cfg, "something-else"))
}
