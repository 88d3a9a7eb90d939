package dispatcher

import "time"

type Config struct {
	WeatherRelayURL string
	JokeRelayURL    string
	Timeout         time.Duration
}

func LoadConfig() *Config {
	return &Config{
		WeatherRelayURL: "http://localhost:8003",
		JokeRelayURL:    "http://localhost:8004",
		Timeout:         10 * time.Second,
	}
}
