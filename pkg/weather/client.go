// Package weather abstracts the external weather data source so the advisory
// logic never needs network access. A real provider can replace the mock
// without touching callers.
package weather

import "time"

type Observation struct {
	Temperature    float64 `json:"temperature"`
	TemperatureMin float64 `json:"temperature_min"`
	TemperatureMax float64 `json:"temperature_max"`
	Humidity       float64 `json:"humidity"`
	Pressure       float64 `json:"pressure"`
	WindSpeed      float64 `json:"wind_speed"`
	Description    string  `json:"description"`
	Precipitation  float64 `json:"precipitation"`
}

type ForecastEntry struct {
	Time           time.Time `json:"time"`
	Temperature    float64   `json:"temperature"`
	TemperatureMin float64   `json:"temperature_min"`
	TemperatureMax float64   `json:"temperature_max"`
	Humidity       float64   `json:"humidity"`
	Precipitation  float64   `json:"precipitation"`
	WindSpeed      float64   `json:"wind_speed"`
	Description    string    `json:"description"`
}

type Provider interface {
	Current(lat, lng float64) (*Observation, error)
	Forecast(lat, lng float64, days int) ([]ForecastEntry, error)
}
