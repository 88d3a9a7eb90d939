// internal/agents/relays/weather-relay/models.go
package weatherrelay

import (
	"agent-relay/internal/common/validation"
	"agent-relay/internal/models"
)

type Input = models.WeatherRequest

type Output = models.WeatherResponse

var inputSchema = validation.MustCompile("weather-relay-input", map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"type", "location"},
	"properties": map[string]interface{}{
		"type":     map[string]interface{}{"type": "string"},
		"location": map[string]interface{}{"type": "string"},
	},
})

// providerSchema is the payload the relay expects back from the weather provider.
var providerSchema = validation.MustCompile("weather-provider-output", map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"temperature", "condition", "humidity", "wind_speed"},
	"properties": map[string]interface{}{
		"location":    map[string]interface{}{"type": "string"},
		"temperature": map[string]interface{}{"type": "number"},
		"condition":   map[string]interface{}{"type": "string"},
		"humidity":    map[string]interface{}{"type": "integer"},
		"wind_speed":  map[string]interface{}{"type": "number"},
	},
})
