package models

// WeatherRequest is accepted by the weather relay.
type WeatherRequest struct {
	Type     RequestType `json:"type"`
	Location string      `json:"location"`
}

// LocationRequest is accepted by the weather provider.
type LocationRequest struct {
	Location string `json:"location"`
}

type WeatherResponse struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}
