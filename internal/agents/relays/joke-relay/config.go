package jokerelay

import "time"

type Config struct {
	ProviderURL string
	Timeout     time.Duration
}

func LoadConfig() *Config {
	return &Config{
		ProviderURL: "http://localhost:8002",
		Timeout:     10 * time.Second,
	}
}
