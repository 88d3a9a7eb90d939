package jokerelay

import (
	"agent-relay/internal/common/validation"
	"agent-relay/internal/models"
)

type Input = models.JokeRequest

type Output = models.JokeResponse

var inputSchema = validation.MustCompile("joke-relay-input", map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"type"},
	"properties": map[string]interface{}{
		"type": map[string]interface{}{"type": "string"},
	},
})

var providerSchema = validation.MustCompile("joke-provider-output", map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"setup", "punchline", "type"},
	"properties": map[string]interface{}{
		"setup":     map[string]interface{}{"type": "string"},
		"punchline": map[string]interface{}{"type": "string"},
		"type":      map[string]interface{}{"type": "string"},
	},
})
