package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "weather-finder/docs"
	"weather-finder/internal/services/weather"
	"weather-finder/pkg/observe"
)

const defaultDisplayLimit = 6

type routes struct {
	service      *weather.Service
	displayLimit int
	l            *observe.Logger
}

func NewRouter(
	app *fiber.App,
	weatherService *weather.Service,
	displayLimit int,
	l *observe.Logger,
) {
	if displayLimit < 1 {
		displayLimit = defaultDisplayLimit
	}
	if l == nil {
		l = observe.NewNopLogger()
	}

	r := &routes{
		service:      weatherService,
		displayLimit: displayLimit,
		l:            l,
	}

	// Swagger documentation, served from the registered docs package
	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	v1 := app.Group("/v1")
	v1.Get("/suggestions", r.handleSuggestions)
	v1.Get("/forecast", r.handleForecast)
}
