package datasource

import (
	"context"
	"errors"
	"fmt"

	"weather-card/models"
)

// WeatherProvider is an interface for services that can fetch current weather for a city
type WeatherProvider interface {
	// GetWeather fetches current weather for a city
	GetWeather(ctx context.Context, city string) (models.CurrentWeather, error)

	// Name returns the provider's name
	Name() string
}

// ErrMalformedResponse is returned when a successful response cannot be used
var ErrMalformedResponse = errors.New("malformed weather response")

// StatusError is returned when the API answers with a non-success status
type StatusError struct {
	StatusCode int
	Body       string
}

// Error reports the status code and the start of the response body
func (e *StatusError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Body)
}
