package dispatcher

import "agent-relay/internal/models"

// ResultType tags which field of a Result is populated.
type ResultType string

const (
	ResultWeather ResultType = "weather"
	ResultJoke    ResultType = "joke"
	ResultError   ResultType = "error"
)

// Result is the outcome of one dispatch cycle.
type Result struct {
	Type      ResultType              `json:"type"`
	RequestID string                  `json:"requestId,omitempty"`
	Weather   *models.WeatherResponse `json:"weather,omitempty"`
	Joke      *models.JokeResponse    `json:"joke,omitempty"`
	Message   string                  `json:"message,omitempty"`
}

func errorResult(requestID, message string) *Result {
	return &Result{Type: ResultError, RequestID: requestID, Message: message}
}
