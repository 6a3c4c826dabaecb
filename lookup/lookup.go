package lookup

import (
	"context"
	"errors"
	"strings"
	"time"

	"weather-card/datasource"
	"weather-card/logger"
	"weather-card/render"

	"github.com/google/uuid"
)

// ErrEmptyCity is returned when the city is empty or only whitespace
var ErrEmptyCity = errors.New("city is required")

// Messages are the user-facing texts written into the page
type Messages struct {
	EmptyCity string // alert for empty input
	NotFound  string // API answered with a non-success status
	Network   string // request could not be completed or decoded
}

// DefaultMessages returns the Spanish texts
func DefaultMessages() Messages {
	return Messages{
		EmptyCity: "Por favor ingresa una ciudad antes de buscar.",
		NotFound:  "No existe la ciudad o error en la búsqueda.",
		Network:   "Error de red. Intenta de nuevo.",
	}
}

// Service performs one weather lookup per call and renders it into a page
type Service struct {
	provider datasource.WeatherProvider
	messages Messages
	logger   *logger.Logger
}

// NewService creates a lookup service. Empty messages fall back to the defaults.
func NewService(provider datasource.WeatherProvider, messages Messages, log *logger.Logger) *Service {
	defaults := DefaultMessages()
	if messages.EmptyCity == "" {
		messages.EmptyCity = defaults.EmptyCity
	}
	if messages.NotFound == "" {
		messages.NotFound = defaults.NotFound
	}
	if messages.Network == "" {
		messages.Network = defaults.Network
	}

	return &Service{
		provider: provider,
		messages: messages,
		logger:   log.Named("lookup"),
	}
}

// FetchWeather looks up city and renders the outcome into page.
// The page is fully rendered before it returns; the error tells the caller which branch was taken:
// ErrEmptyCity, a *datasource.StatusError, or the underlying network/decoding error.
func (s *Service) FetchWeather(ctx context.Context, city string, page render.Page) error {
	if strings.TrimSpace(city) == "" {
		page.Alert(s.messages.EmptyCity)
		return ErrEmptyCity
	}

	log := s.logger.With(
		logger.String("lookup_id", uuid.NewString()),
		logger.String("city", city),
		logger.String("provider", s.provider.Name()),
	)

	page.Reset()

	start := time.Now()
	data, err := s.provider.GetWeather(ctx, city)
	if err != nil {
		var statusErr *datasource.StatusError
		if errors.As(err, &statusErr) {
			page.ShowError(s.messages.NotFound)
			log.Info("Weather lookup rejected by API",
				logger.Int("status_code", statusErr.StatusCode),
				logger.Duration("duration", time.Since(start)))
			return err
		}

		page.ShowError(s.messages.Network)
		log.Error("Weather lookup failed",
			logger.Error(err),
			logger.Duration("duration", time.Since(start)))
		return err
	}

	card := render.NewCard(data)
	page.ShowWeather(card)

	log.Debug("Weather lookup rendered",
		logger.String("condition", card.Condition),
		logger.Int("temperature_c", card.TemperatureC),
		logger.Duration("duration", time.Since(start)))
	return nil
}
