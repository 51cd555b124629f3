package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pkmlab.dev/sensor-monitor-service/pkg/models"
)

const defaultWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// WeatherSource polls a public weather API and maps the response onto the
// sensor channels: soil moisture has no real counterpart, so it is derived
// from air humidity with a little jitter, exactly as the dashboard did.
type WeatherSource struct {
	BaseURL string
	City    string
	APIKey  string
	Client  *http.Client
}

func NewWeatherSource(city, apiKey string) *WeatherSource {
	return &WeatherSource{
		BaseURL: defaultWeatherBaseURL,
		City:    city,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *WeatherSource) Name() string { return "weather" }

type weatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (w *WeatherSource) Fetch(ctx context.Context) (*models.Reading, error) {
	q := url.Values{}
	q.Set("q", w.City)
	q.Set("appid", w.APIKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := w.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("weather api: invalid API key")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather api: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	var parsed weatherResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("weather api: malformed response: %w", err)
	}

	temp := parsed.Main.Temp
	humidity := parsed.Main.Humidity
	soil := clamp(humidity*0.7+(rand.Float64()*2-1), 20, 80)
	wind := round1(parsed.Wind.Speed * 3.6) // m/s -> km/h

	reading := &models.Reading{
		Temperature:  &temp,
		Humidity:     &humidity,
		SoilHumidity: &soil,
		WindSpeed:    &wind,
		Location:     parsed.Name,
		Timestamp:    time.Now().UTC(),
	}

	if len(parsed.Weather) > 0 {
		condition := strings.ToLower(parsed.Weather[0].Main)
		reading.RainDetection = strings.Contains(condition, "rain") || strings.Contains(condition, "storm")
		reading.Weather = parsed.Weather[0].Description
	}

	return reading, nil
}
