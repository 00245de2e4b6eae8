package repositories

import (
	"context"
	"net/http"

	"weather-finder/config"
	"weather-finder/internal/models"
	"weather-finder/pkg/observe"
)

// HTTPClient is satisfied by *http.Client; tests swap in fakes.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WeatherClient is the provider-facing contract used by the services.
type WeatherClient interface {
	Name() string
	FetchForecast(ctx context.Context, query string) (models.WeatherReport, error)
	FetchSuggestions(ctx context.Context, partialQuery string) ([]models.CitySuggestion, error)
}

var _ WeatherClient = (*WeatherAPIRepository)(nil)

// InitWeatherRepository builds the provider client from configuration using
// the default HTTP client, with no timeout of its own.
func InitWeatherRepository(cfg *config.Config, l *observe.Logger) (*WeatherAPIRepository, error) {
	return NewWeatherAPIRepository(
		cfg.Weather.BaseURL,
		cfg.Weather.APIKey,
		l,
		&http.Client{},
		WithMinSuggestionQueryLength(cfg.Suggestions.MinQueryLength),
	)
}
