package models

// JokeRequest is accepted by the joke relay.
type JokeRequest struct {
	Type RequestType `json:"type"`
}

// JokeResponse carries the joke category under the "type" key on the wire.
type JokeResponse struct {
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
	Category  string `json:"type"`
}
