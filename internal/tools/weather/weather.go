// Package weather is a minimal REST client to an OpenWeatherMap-compatible
// current-conditions endpoint.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"travelassist/internal/domain"
)

// Ensure Client implements the domain interface.
var _ domain.WeatherLookup = (*Client)(nil)

// Client looks up current conditions for a city, metric units.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// Config configures the weather client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewClient creates a weather client. The API key is mandatory.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: weather API key", domain.ErrMissingCredential)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openweathermap.org/data/2.5"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// Lookup fetches current conditions for the given city.
func (c *Client) Lookup(ctx context.Context, city string) (domain.WeatherReport, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)
	endpoint := fmt.Sprintf("%s/weather?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.WeatherReport{}, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return domain.WeatherReport{}, fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.WeatherReport{}, fmt.Errorf("%w: city %q", domain.ErrNotFound, city)
	case resp.StatusCode >= 300:
		return domain.WeatherReport{}, fmt.Errorf("%w: weather lookup failed: %s", domain.ErrServiceUnavailable, resp.Status)
	}

	var out struct {
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.WeatherReport{}, fmt.Errorf("%w: decoding response: %v", domain.ErrServiceUnavailable, err)
	}
	report := domain.WeatherReport{City: city, TempC: out.Main.Temp}
	if out.Name != "" {
		report.City = out.Name
	}
	if len(out.Weather) > 0 {
		report.Description = out.Weather[0].Description
	}
	return report, nil
}
