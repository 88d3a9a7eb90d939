package weatherprovider

// LocationProfile bounds the synthetic weather generated for one city.
type LocationProfile struct {
	Name          string
	TempRange     [2]float64
	Conditions    []string
	HumidityRange [2]int
	WindRange     [2]float64
}

// locations is ordered; the order is used in NotFound messages.
var locations = []LocationProfile{
	{
		Name:          "New York",
		TempRange:     [2]float64{-5, 30},
		Conditions:    []string{"Sunny", "Cloudy", "Rainy", "Snowy"},
		HumidityRange: [2]int{30, 80},
		WindRange:     [2]float64{5, 25},
	},
	{
		Name:          "London",
		TempRange:     [2]float64{0, 25},
		Conditions:    []string{"Cloudy", "Rainy", "Sunny", "Foggy"},
		HumidityRange: [2]int{50, 90},
		WindRange:     [2]float64{5, 20},
	},
	{
		Name:          "Tokyo",
		TempRange:     [2]float64{5, 35},
		Conditions:    []string{"Sunny", "Cloudy", "Rainy", "Humid"},
		HumidityRange: [2]int{40, 85},
		WindRange:     [2]float64{5, 15},
	},
	{
		Name:          "Paris",
		TempRange:     [2]float64{0, 30},
		Conditions:    []string{"Sunny", "Cloudy", "Rainy", "Windy"},
		HumidityRange: [2]int{40, 80},
		WindRange:     [2]float64{5, 20},
	},
	{
		Name:          "Sydney",
		TempRange:     [2]float64{10, 35},
		Conditions:    []string{"Sunny", "Cloudy", "Rainy", "Windy"},
		HumidityRange: [2]int{30, 75},
		WindRange:     [2]float64{5, 25},
	},
}

var locationsByName = func() map[string]LocationProfile {
	m := make(map[string]LocationProfile, len(locations))
	for _, l := range locations {
		m[l.Name] = l
	}
	return m
}()

// SupportedLocations returns the served city names in table order.
func SupportedLocations() []string {
	names := make([]string, 0, len(locations))
	for _, l := range locations {
		names = append(names, l.Name)
	}
	return names
}

// Profile returns the weather profile of a supported city.
func Profile(name string) (LocationProfile, bool) {
	p, ok := locationsByName[name]
	return p, ok
}
