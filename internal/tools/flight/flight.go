// Package flight is a minimal REST client to an AviationStack-compatible
// scheduled-flights endpoint.
package flight

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
var _ domain.FlightLookup = (*Client)(nil)

// Client searches scheduled flights for a route and date.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// Config configures the flight client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewClient creates a flight client. The API key is mandatory.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: flight API key", domain.ErrMissingCredential)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.aviationstack.com/v1"
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

// Search returns the first flight matching the query, or ErrNotFound when
// the provider reports no flights for the route and date.
func (c *Client) Search(ctx context.Context, fq domain.FlightQuery) (domain.Flight, error) {
	q := url.Values{}
	q.Set("access_key", c.apiKey)
	q.Set("dep_iata", fq.Origin)
	q.Set("arr_iata", fq.Destination)
	if fq.Date != "" {
		q.Set("flight_date", fq.Date)
	}
	endpoint := fmt.Sprintf("%s/flights?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Flight{}, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return domain.Flight{}, fmt.Errorf("%w: flight search failed: %s", domain.ErrServiceUnavailable, resp.Status)
	}

	var out struct {
		Data []struct {
			FlightDate string `json:"flight_date"`
			Flight     struct {
				IATA string `json:"iata"`
			} `json:"flight"`
			Departure struct {
				Airport   string `json:"airport"`
				Scheduled string `json:"scheduled"`
			} `json:"departure"`
			Arrival struct {
				Airport string `json:"airport"`
			} `json:"arrival"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.Flight{}, fmt.Errorf("%w: decoding response: %v", domain.ErrServiceUnavailable, err)
	}
	if len(out.Data) == 0 {
		return domain.Flight{}, fmt.Errorf("%w: no flights from %s to %s", domain.ErrNotFound, fq.Origin, fq.Destination)
	}
	first := out.Data[0]
	return domain.Flight{
		Number:      first.Flight.IATA,
		Departure:   first.Departure.Airport,
		Arrival:     first.Arrival.Airport,
		ScheduledAt: first.Departure.Scheduled,
	}, nil
}
