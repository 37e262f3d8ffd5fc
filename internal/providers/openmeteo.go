package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const dailyFields = "temperature_2m_max,temperature_2m_min,precipitation_probability_max,wind_speed_10m_max"

var ErrLocationNotFound = errors.New("location not found")

type OpenMeteoClient interface {
	ResolveLocation(ctx context.Context, query string) (*Location, error)
	FetchForecast(ctx context.Context, latitude, longitude string, start, end time.Time) (*ForecastPayload, error)
}

type openMeteoClient struct {
	geocodingURL string
	forecastURL  string
	client       *http.Client
}

func NewOpenMeteoClient(geocodingURL, forecastURL string, timeout time.Duration) OpenMeteoClient {
	return &openMeteoClient{
		geocodingURL: geocodingURL,
		forecastURL:  forecastURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Location is the best geocoding match. Coordinates keep the provider's
// literal number text.
type Location struct {
	Name      string
	Country   string
	Latitude  string
	Longitude string
}

// DisplayName is the canonical "name, country" form stored with a query.
func (l Location) DisplayName() string {
	return fmt.Sprintf("%s, %s", l.Name, l.Country)
}

type GeocodingResponse struct {
	Results []struct {
		Name      string      `json:"name"`
		Country   string      `json:"country"`
		Latitude  json.Number `json:"latitude"`
		Longitude json.Number `json:"longitude"`
	} `json:"results"`
}

type ForecastPayload struct {
	CurrentWeather *CurrentWeather `json:"current_weather,omitempty"`
	Daily          DailyForecast   `json:"daily"`
}

type CurrentWeather struct {
	Temperature *float64 `json:"temperature"`
	WindSpeed   *float64 `json:"windspeed"`
}

type DailyForecast struct {
	Time                        []string   `json:"time"`
	TemperatureMax              []*float64 `json:"temperature_2m_max"`
	TemperatureMin              []*float64 `json:"temperature_2m_min"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
	WindSpeedMax                []*float64 `json:"wind_speed_10m_max"`
}

func (c *openMeteoClient) ResolveLocation(ctx context.Context, query string) (*Location, error) {
	params := url.Values{}
	params.Set("name", query)
	params.Set("count", "1")

	var apiResp GeocodingResponse
	if err := c.getJSON(ctx, "geocoding", c.geocodingURL, params, &apiResp); err != nil {
		return nil, err
	}

	if len(apiResp.Results) == 0 {
		return nil, ErrLocationNotFound
	}

	best := apiResp.Results[0]

	return &Location{
		Name:      best.Name,
		Country:   best.Country,
		Latitude:  best.Latitude.String(),
		Longitude: best.Longitude.String(),
	}, nil
}

func (c *openMeteoClient) FetchForecast(ctx context.Context, latitude, longitude string, start, end time.Time) (*ForecastPayload, error) {
	params := url.Values{}
	params.Set("latitude", latitude)
	params.Set("longitude", longitude)
	params.Set("current_weather", "true")
	params.Set("daily", dailyFields)
	params.Set("timezone", "auto")
	params.Set("start_date", start.Format("2006-01-02"))
	params.Set("end_date", end.Format("2006-01-02"))

	var payload ForecastPayload
	if err := c.getJSON(ctx, "forecast", c.forecastURL, params, &payload); err != nil {
		return nil, err
	}

	return &payload, nil
}

func (c *openMeteoClient) getJSON(ctx context.Context, api, baseURL string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%s request could not be built: %w", api, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", api, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status code: %d", api, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s returned malformed JSON: %w", api, err)
	}

	return nil
}
