// internal/agents/relays/weather-relay/config.go
package weatherrelay

import "time"

type Config struct {
	ProviderURL string
	Timeout     time.Duration
}

func LoadConfig() *Config {
	return &Config{
		ProviderURL: "http://localhost:8001",
		Timeout:     10 * time.Second,
	}
}
