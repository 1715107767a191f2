package weather

import "time"

type mockProvider struct{}

// NewMock returns a deterministic provider for demos and tests.
func NewMock() Provider { return &mockProvider{} }

func (m *mockProvider) Current(lat, lng float64) (*Observation, error) {
	return &Observation{
		Temperature:    15.5,
		TemperatureMin: 12.0,
		TemperatureMax: 18.0,
		Humidity:       65,
		Pressure:       1013,
		WindSpeed:      3.2,
		Description:    "partly cloudy",
		Precipitation:  0.0,
	}, nil
}

func (m *mockProvider) Forecast(lat, lng float64, days int) ([]ForecastEntry, error) {
	base := time.Now()
	out := make([]ForecastEntry, 0, days)
	for i := 0; i < days; i++ {
		precip := 0.0
		desc := "clear"
		if i >= 3 {
			precip = float64(i-2) * 2
			desc = "light rain"
		}
		out = append(out, ForecastEntry{
			Time:           base.AddDate(0, 0, i),
			Temperature:    15 + float64(i),
			TemperatureMin: 12 + float64(i),
			TemperatureMax: 18 + float64(i),
			Humidity:       60 + float64(i*2),
			Precipitation:  precip,
			WindSpeed:      3.0,
			Description:    desc,
		})
	}
	return out, nil
}
