// Package climate stores per-field weather samples and summarizes conditions
// for a field from the injected weather provider.
package climate

import (
	"log"
	"math"
	"time"

	"croplan/entities"
	"croplan/pkg/climate/repository"
	"croplan/pkg/weather"
)

// Fallback point when a field has no coordinates.
const (
	defaultLat = 55.7558
	defaultLng = 37.6173
)

const (
	ZoneNorth     = "north"
	ZoneTemperate = "temperate"
	ZoneSouth     = "south"
)

type ForecastSummary struct {
	AvgTemperature     float64 `json:"avg_temperature"`
	TotalPrecipitation float64 `json:"total_precipitation"`
	MaxTemperature     float64 `json:"max_temperature"`
	MinTemperature     float64 `json:"min_temperature"`
	ForecastDays       int     `json:"forecast_days"`
}

type GrowingSeason struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

type Report struct {
	Current         *weather.Observation `json:"current_weather"`
	ClimateZone     string               `json:"climate_zone"`
	ForecastSummary *ForecastSummary     `json:"forecast_summary,omitempty"`
	GrowingSeason   GrowingSeason        `json:"growing_season"`
}

type Analyzer struct {
	samples  repository.ClimateRepository
	provider weather.Provider
}

func NewAnalyzer(samples repository.ClimateRepository, provider weather.Provider) *Analyzer {
	return &Analyzer{samples: samples, provider: provider}
}

// AnalyzeField fetches current conditions and a 7-day forecast for the
// field's location, records the observation as a climate sample, and
// classifies the climate zone.
func (a *Analyzer) AnalyzeField(f *entities.Field) (*Report, error) {
	lat, lng := defaultLat, defaultLng
	if f.Latitude != nil {
		lat = *f.Latitude
	}
	if f.Longitude != nil {
		lng = *f.Longitude
	}

	current, err := a.provider.Current(lat, lng)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Current:       current,
		ClimateZone:   classifyZone(current),
		GrowingSeason: growingSeason(f.ClimateZone),
	}

	if forecast, err := a.provider.Forecast(lat, lng, 7); err == nil {
		report.ForecastSummary = summarize(forecast)
	} else {
		log.Printf("forecast unavailable for field %d: %v", f.FieldID, err)
	}

	sample := &entities.ClimateSample{
		FieldID:        f.FieldID,
		Date:           time.Now().Format("2006-01-02"),
		TemperatureAvg: current.Temperature,
		TemperatureMin: current.TemperatureMin,
		TemperatureMax: current.TemperatureMax,
		Precipitation:  current.Precipitation,
		Humidity:       current.Humidity,
		WindSpeed:      current.WindSpeed,
		SolarRadiation: 150, // no radiation feed; placeholder level
	}
	if err := a.samples.Save(sample); err != nil {
		log.Printf("save climate sample for field %d: %v", f.FieldID, err)
	}

	return report, nil
}

func classifyZone(obs *weather.Observation) string {
	switch {
	case obs.Temperature < 5:
		return ZoneNorth
	case obs.Temperature < 15:
		return ZoneTemperate
	default:
		return ZoneSouth
	}
}

func summarize(forecast []weather.ForecastEntry) *ForecastSummary {
	if len(forecast) == 0 {
		return nil
	}
	s := &ForecastSummary{
		MaxTemperature: forecast[0].TemperatureMax,
		MinTemperature: forecast[0].TemperatureMin,
		ForecastDays:   len(forecast),
	}
	var sumTemp float64
	for _, f := range forecast {
		sumTemp += f.Temperature
		s.TotalPrecipitation += f.Precipitation
		if f.TemperatureMax > s.MaxTemperature {
			s.MaxTemperature = f.TemperatureMax
		}
		if f.TemperatureMin < s.MinTemperature {
			s.MinTemperature = f.TemperatureMin
		}
	}
	s.AvgTemperature = round1(sumTemp / float64(len(forecast)))
	s.TotalPrecipitation = round1(s.TotalPrecipitation)
	s.MaxTemperature = round1(s.MaxTemperature)
	s.MinTemperature = round1(s.MinTemperature)
	return s
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func growingSeason(zone string) GrowingSeason {
	switch zone {
	case ZoneNorth:
		return GrowingSeason{Start: "May 15", End: "September 15", Days: 120}
	case ZoneSouth:
		return GrowingSeason{Start: "April 15", End: "October 15", Days: 180}
	default:
		return GrowingSeason{Start: "May 1", End: "September 30", Days: 150}
	}
}
