package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"weather-finder/internal/display"
	"weather-finder/internal/models"
	"weather-finder/internal/repositories"
	"weather-finder/internal/services/weather"
	"weather-finder/pkg/httpserver"
)

// SuggestionsResponse lists autocomplete matches in provider order.
type SuggestionsResponse struct {
	Query       string                  `json:"query" example:"Lon"`
	Suggestions []models.CitySuggestion `json:"suggestions"`
}

// ErrorResponse represents an error response
type ErrorResponse = httpserver.ErrorResponse

// GetSuggestions godoc
// @Summary City suggestions
// @Description Returns up to six cities matching a partial name. Queries shorter than two characters return an empty list without contacting the provider.
// @Tags Search
// @Produce json
// @Param q query string false "Partial city name" example(Lon)
// @Success 200 {object} SuggestionsResponse "Successful response"
// @Failure 502 {object} ErrorResponse "Provider rejected the request or sent an unreadable response"
// @Failure 504 {object} ErrorResponse "Provider unreachable"
// @Router /v1/suggestions [get]
func (r *routes) handleSuggestions(c *fiber.Ctx) error {
	query := c.Query("q")

	suggestions, err := r.service.Suggestions(c.UserContext(), query)
	if err != nil {
		return r.failure(c, err)
	}

	if len(suggestions) > r.displayLimit {
		suggestions = suggestions[:r.displayLimit]
	}
	if suggestions == nil {
		suggestions = []models.CitySuggestion{}
	}

	return c.JSON(SuggestionsResponse{
		Query:       query,
		Suggestions: suggestions,
	})
}

// GetForecast godoc
// @Summary Forecast detail view
// @Description Fetches current conditions and the 7-day forecast for a city and resolves every display field (icons, localized dates, whole-degree values).
// @Tags Weather
// @Produce json
// @Param q query string true "City name as picked from the suggestions" example(London)
// @Param style query string false "Date label style" Enums(short, long) default(short)
// @Success 200 {object} models.ForecastView "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 502 {object} ErrorResponse "Provider rejected the request or sent an unreadable response"
// @Failure 504 {object} ErrorResponse "Provider unreachable"
// @Router /v1/forecast [get]
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:8080/v1/forecast?q=London&style=long"
func (r *routes) handleForecast(c *fiber.Ctx) error {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: q",
		})
	}

	style, ok := display.ParseDateStyle(c.Query("style"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid style: expected short or long",
		})
	}

	report, err := r.service.Forecast(c.UserContext(), query)
	if err != nil {
		return r.failure(c, err)
	}

	return c.JSON(weather.ForecastView(report, style))
}

// failure maps client errors to gateway statuses. Only the provider's own
// message is passed through to the caller.
func (r *routes) failure(c *fiber.Ctx, err error) error {
	var (
		providerErr *repositories.ProviderError
		networkErr  *repositories.NetworkError
		decodeErr   *repositories.DecodeError
	)

	r.l.Warning("request failed", map[string]any{
		"path":       c.Path(),
		"request_id": httpserver.RequestID(c),
		"err":        err.Error(),
	})

	switch {
	case errors.As(err, &providerErr):
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{Error: providerErr.Message})
	case errors.As(err, &decodeErr):
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{Error: "Unexpected response from weather provider"})
	case errors.As(err, &networkErr):
		return c.Status(fiber.StatusGatewayTimeout).JSON(ErrorResponse{Error: "Weather provider unreachable"})
	}

	r.l.Error(err, map[string]any{"path": c.Path(), "request_id": httpserver.RequestID(c)})
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Failed to fetch weather data"})
}
