// internal/models/query_types.go
package models

// RequestType is the discriminator every relay request carries.
type RequestType string

const (
	RequestTypeWeather RequestType = "weather"
	RequestTypeJoke    RequestType = "joke"
)

// Intent is the classification of a free-text query.
type Intent string

const (
	IntentWeather Intent = "weather"
	IntentJoke    Intent = "joke"
	IntentUnknown Intent = "unknown"
)
