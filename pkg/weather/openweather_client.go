package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type openWeather struct {
	baseURL string
	key     string
	httpc   *http.Client
}

// NewOpenWeather talks to the OpenWeatherMap 2.5 API.
func NewOpenWeather(key string) Provider {
	return &openWeather{
		baseURL: "https://api.openweathermap.org/data/2.5",
		key:     key,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

type owmMain struct {
	Temp     float64 `json:"temp"`
	TempMin  float64 `json:"temp_min"`
	TempMax  float64 `json:"temp_max"`
	Humidity float64 `json:"humidity"`
	Pressure float64 `json:"pressure"`
}

type owmEntry struct {
	Dt      int64   `json:"dt"`
	Main    owmMain `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain map[string]float64 `json:"rain"`
	Snow map[string]float64 `json:"snow"`
}

func (c *openWeather) Current(lat, lng float64) (*Observation, error) {
	var payload owmEntry
	if err := c.get("/weather", lat, lng, &payload); err != nil {
		return nil, err
	}

	obs := &Observation{
		Temperature:    payload.Main.Temp,
		TemperatureMin: payload.Main.TempMin,
		TemperatureMax: payload.Main.TempMax,
		Humidity:       payload.Main.Humidity,
		Pressure:       payload.Main.Pressure,
		WindSpeed:      payload.Wind.Speed,
		Precipitation:  payload.Rain["1h"] + payload.Snow["1h"],
	}
	if len(payload.Weather) > 0 {
		obs.Description = payload.Weather[0].Description
	}
	return obs, nil
}

func (c *openWeather) Forecast(lat, lng float64, days int) ([]ForecastEntry, error) {
	var payload struct {
		List []owmEntry `json:"list"`
	}
	if err := c.get("/forecast", lat, lng, &payload); err != nil {
		return nil, err
	}

	// the API serves 8 three-hour slots per day
	limit := days * 8
	if limit > len(payload.List) {
		limit = len(payload.List)
	}
	out := make([]ForecastEntry, 0, limit)
	for _, item := range payload.List[:limit] {
		e := ForecastEntry{
			Time:           time.Unix(item.Dt, 0),
			Temperature:    item.Main.Temp,
			TemperatureMin: item.Main.TempMin,
			TemperatureMax: item.Main.TempMax,
			Humidity:       item.Main.Humidity,
			Precipitation:  item.Rain["3h"] + item.Snow["3h"],
			WindSpeed:      item.Wind.Speed,
		}
		if len(item.Weather) > 0 {
			e.Description = item.Weather[0].Description
		}
		out = append(out, e)
	}
	return out, nil
}

func (c *openWeather) get(path string, lat, lng float64, dst any) error {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lng))
	q.Set("appid", c.key)
	q.Set("units", "metric")

	resp, err := c.httpc.Get(c.baseURL + path + "?" + q.Encode())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather: %s returned %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}
