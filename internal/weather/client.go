package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/justestif/go-tracktune/internal/metrics"
)

const (
	// DefaultBaseURL is the OpenWeatherMap current weather endpoint.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

	userAgent = "tracktune/1.0"
)

// Sentinel errors.
var (
	// ErrLocationNotFound is returned when OpenWeatherMap does not know the location.
	ErrLocationNotFound = errors.New("location not found")

	// ErrInvalidAPIKey is returned when the API key is rejected.
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrMissingAPIKey is returned by NewClient when no key is configured.
	ErrMissingAPIKey = errors.New("missing OpenWeatherMap API key")
)

// Config holds OpenWeatherMap API configuration.
type Config struct {
	APIKey  string
	BaseURL string // Optional; DefaultBaseURL when empty
	Timeout time.Duration
}

// Client is an OpenWeatherMap API client.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new OpenWeatherMap client from the provided configuration.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		apiKey: cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}, nil
}

// Fetch returns the current weather for a location such as "London" or "Paris,FR".
// Temperatures are requested in metric units.
func (c *Client) Fetch(ctx context.Context, location string) (obs Observation, err error) {
	defer func(start time.Time) { metrics.ObserveUpstream("openweathermap", start, err) }(time.Now())

	params := url.Values{
		"q":     {location},
		"units": {"metric"},
		"appid": {c.apiKey},
	}

	body, err := c.doRequest(ctx, params)
	if err != nil {
		return Observation{}, fmt.Errorf("fetching weather for %q: %w", location, err)
	}

	var resp currentWeatherResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Observation{}, fmt.Errorf("parsing weather response: %w", err)
	}

	return toObservation(resp), nil
}

// toObservation maps the upstream payload. Missing pieces stay zero or nil so
// callers can tell an absent temperature from 0°C.
func toObservation(resp currentWeatherResponse) Observation {
	var obs Observation
	if resp.Main != nil {
		obs.Temperature = resp.Main.Temp
		obs.Humidity = resp.Main.Humidity
	}
	if len(resp.Weather) > 0 {
		obs.Conditions = resp.Weather[0].Main
		obs.Description = resp.Weather[0].Description
	}
	obs.WindSpeed = resp.Wind.Speed
	return obs
}

// doRequest performs a single HTTP GET request and checks for API errors.
func (c *Client) doRequest(ctx context.Context, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", redactURL(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var apiErr apiError
	_ = json.Unmarshal(body, &apiErr)

	code := resp.StatusCode
	if n, ok := parseCod(apiErr.Cod); ok {
		code = n
	}

	switch code {
	case http.StatusNotFound:
		return nil, ErrLocationNotFound
	case http.StatusUnauthorized:
		return nil, ErrInvalidAPIKey
	}

	msg := strings.TrimSpace(apiErr.Message)
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return nil, fmt.Errorf("API error %d: %s", code, msg)
}

// parseCod reads the "cod" field, which may be a JSON number or string.
func parseCod(v any) (int, bool) {
	switch c := v.(type) {
	case float64:
		return int(c), true
	case string:
		n, err := strconv.Atoi(c)
		return n, err == nil
	default:
		return 0, false
	}
}

// redactURL drops the query string, which carries the API key, from
// transport errors.
func redactURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL, _, _ = strings.Cut(uerr.URL, "?")
	}
	return err
}
