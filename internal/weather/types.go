// Package weather provides OpenWeatherMap integration for current conditions.
package weather

// Observation is the current weather at a location.
// Temperature is nil when the upstream payload did not carry one.
type Observation struct {
	Conditions  string   `json:"conditions"`  // Canonical label: "Clear", "Rain", "Snow", ...
	Temperature *float64 `json:"temperature"` // Celsius
	Description string   `json:"description"`
	Humidity    float64  `json:"humidity"`
	WindSpeed   float64  `json:"wind_speed"`
}

// Celsius returns a pointer to t, for building observations by hand.
func Celsius(t float64) *float64 {
	return &t
}

// currentWeatherResponse is the subset of the /data/2.5/weather payload we read.
type currentWeatherResponse struct {
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity float64  `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// apiError represents an OpenWeatherMap error payload.
// cod is a number on success and a string on most errors.
type apiError struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
