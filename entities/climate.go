package entities

import "time"

// ClimateSample is an append-only per-field weather fact, queried by date range.
type ClimateSample struct {
	SampleID       uint    `gorm:"primaryKey" json:"sample_id"`
	FieldID        uint    `gorm:"index" json:"field_id"`
	Date           string  `gorm:"index" json:"date"` // YYYY-MM-DD
	TemperatureAvg float64 `json:"temperature_avg"`
	TemperatureMin float64 `json:"temperature_min"`
	TemperatureMax float64 `json:"temperature_max"`
	Precipitation  float64 `json:"precipitation"`
	Humidity       float64 `json:"humidity"`
	WindSpeed      float64 `json:"wind_speed"`
	SolarRadiation float64 `json:"solar_radiation"`

	CreatedAt time.Time `json:"created_at"`
}
