// internal/agents/providers/weather-provider/models.go
package weatherprovider

import (
	"agent-relay/internal/common/validation"
	"agent-relay/internal/models"
)

type Input = models.LocationRequest

type Output = models.WeatherResponse

var inputSchema = validation.MustCompile("weather-provider-input", map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"location"},
	"properties": map[string]interface{}{
		"location": map[string]interface{}{"type": "string"},
	},
})
