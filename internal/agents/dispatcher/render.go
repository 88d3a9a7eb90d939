package dispatcher

import (
	"fmt"
	"strings"
)

// Render formats a result for terminal output.
func Render(r *Result) string {
	if r == nil {
		return ""
	}

	var b strings.Builder
	switch {
	case r.Type == ResultWeather && r.Weather != nil:
		w := r.Weather
		fmt.Fprintf(&b, "🌡️ Weather in %s:\n", w.Location)
		fmt.Fprintf(&b, "Temperature: %.1f°C\n", w.Temperature)
		fmt.Fprintf(&b, "Condition: %s\n", w.Condition)
		fmt.Fprintf(&b, "Humidity: %d%%\n", w.Humidity)
		fmt.Fprintf(&b, "Wind Speed: %.1f km/h", w.WindSpeed)
	case r.Type == ResultJoke && r.Joke != nil:
		b.WriteString("😄 Here's a joke for you:\n")
		fmt.Fprintf(&b, "Q: %s\n", r.Joke.Setup)
		fmt.Fprintf(&b, "A: %s", r.Joke.Punchline)
	default:
		b.WriteString(r.Message)
	}
	return b.String()
}
