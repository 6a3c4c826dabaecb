package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"weather-card/models"
)

const (
	maxBodyBytes  = 1 << 20
	maxErrorBytes = 512
)

// OpenWeatherMapProvider fetches current weather from an OpenWeatherMap-compatible endpoint
type OpenWeatherMapProvider struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

// Ensure OpenWeatherMapProvider implements WeatherProvider
var _ WeatherProvider = (*OpenWeatherMapProvider)(nil)

// NewOpenWeatherMapProvider creates a new provider for the given base URL and key.
// A zero timeout leaves the request bounded only by its context.
func NewOpenWeatherMapProvider(apiURL, apiKey string, timeout time.Duration) *OpenWeatherMapProvider {
	return &OpenWeatherMapProvider{
		apiURL: apiURL,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the provider name
func (p *OpenWeatherMapProvider) Name() string {
	return "OpenWeatherMap"
}

// GetWeather fetches current weather for a city
func (p *OpenWeatherMapProvider) GetWeather(ctx context.Context, city string) (models.CurrentWeather, error) {
	endpoint, err := p.requestURL(city)
	if err != nil {
		return models.CurrentWeather{}, err
	}

	// Create request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.CurrentWeather{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	// Execute request
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return models.CurrentWeather{}, fmt.Errorf("failed to execute request: %w", redactKey(err))
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return models.CurrentWeather{}, fmt.Errorf("failed to read response body: %w", err)
	}

	// Anything outside 2xx counts as a failed search
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(body) > maxErrorBytes {
			body = body[:maxErrorBytes]
		}
		return models.CurrentWeather{}, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	// Parse response
	var weather models.CurrentWeather
	if err := json.Unmarshal(body, &weather); err != nil {
		return models.CurrentWeather{}, fmt.Errorf("failed to parse response: %w: %v", ErrMalformedResponse, err)
	}
	if weather.Main == nil {
		return models.CurrentWeather{}, fmt.Errorf("response has no main readings: %w", ErrMalformedResponse)
	}
	if weather.Wind == nil {
		return models.CurrentWeather{}, fmt.Errorf("response has no wind readings: %w", ErrMalformedResponse)
	}

	return weather, nil
}

// requestURL merges the city and key into the base URL, keeping any query it already carries
func (p *OpenWeatherMapProvider) requestURL(city string) (string, error) {
	u, err := url.Parse(p.apiURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse API URL: %w", err)
	}

	params := u.Query()
	params.Set("q", city)
	params.Set("appid", p.apiKey)
	u.RawQuery = params.Encode()

	return u.String(), nil
}

// redactKey strips the API key from the request URL that net/http puts in its errors
func redactKey(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	u, parseErr := url.Parse(urlErr.URL)
	if parseErr != nil {
		return urlErr.Err
	}
	params := u.Query()
	if params.Has("appid") {
		params.Set("appid", "REDACTED")
		u.RawQuery = params.Encode()
	}

	return &url.Error{Op: urlErr.Op, URL: u.String(), Err: urlErr.Err}
}
