package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"bookingnest-payments/config"
	"bookingnest-payments/internal/core/ports"

	"github.com/rs/zerolog"
)

const defaultTimeout = 10 * time.Second

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.Geocoder against the Nominatim reverse endpoint.
// It is a pure pass-through: lat/lon go out verbatim and the upstream
// payload comes back unmodified.
type Client struct {
	baseURL    string
	userAgent  string
	timeout    time.Duration
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a geocoding client.
func NewClient(cfg config.NominatimConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		timeout:    timeout,
		httpClient: httpClient,
		log:        log,
	}
}

var _ ports.Geocoder = (*Client)(nil)

// Reverse looks up the address for a coordinate pair.
func (c *Client) Reverse(ctx context.Context, lat, lon string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	q := url.Values{}
	q.Set("lat", lat)
	q.Set("lon", lon)
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building reverse request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reverse request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading reverse response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn().Int("status", resp.StatusCode).Msg("nominatim: reverse lookup failed")
		return nil, fmt.Errorf("reverse returned %d", resp.StatusCode)
	}
	return body, nil
}
