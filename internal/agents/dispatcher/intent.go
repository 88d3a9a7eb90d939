package dispatcher

import (
	"strings"

	"agent-relay/internal/models"
)

const DefaultLocation = "New York"

var (
	weatherKeywords = []string{"weather", "temperature", "forecast"}
	jokeKeywords    = []string{"joke", "funny", "humor"}

	// Checked in order; the first match wins.
	cities = []string{"New York", "London", "Tokyo", "Paris", "Sydney"}
)

// Classify maps a free-text query to an intent. Weather keywords take
// precedence over joke keywords.
func Classify(query string) models.Intent {
	q := strings.ToLower(query)
	switch {
	case containsAny(q, weatherKeywords):
		return models.IntentWeather
	case containsAny(q, jokeKeywords):
		return models.IntentJoke
	default:
		return models.IntentUnknown
	}
}

// ExtractLocation returns the first supported city mentioned in query, or
// DefaultLocation.
func ExtractLocation(query string) string {
	q := strings.ToLower(query)
	for _, city := range cities {
		if strings.Contains(q, strings.ToLower(city)) {
			return city
		}
	}
	return DefaultLocation
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
