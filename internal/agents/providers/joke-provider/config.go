// internal/agents/providers/joke-provider/config.go
package jokeprovider

import "math/rand/v2"

type Config struct {
	// Rand overrides the selection source. Nil uses the process-wide generator.
	Rand *rand.Rand
}

func LoadConfig() *Config {
	return &Config{}
}
