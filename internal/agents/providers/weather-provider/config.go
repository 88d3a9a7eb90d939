// internal/agents/providers/weather-provider/config.go
package weatherprovider

import "math/rand/v2"

type Config struct {
	// Rand overrides the sampling source. Nil uses the process-wide generator.
	Rand *rand.Rand
}

func LoadConfig() *Config {
	return &Config{}
}
