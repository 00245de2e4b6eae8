package weather

import (
	"context"
	"errors"
	"time"

	"weather-finder/internal/display"
	"weather-finder/internal/models"
	"weather-finder/internal/repositories"
	"weather-finder/pkg/observe"
)

// Service is what presentation layers call. It adds logging around the
// provider client and builds display-ready views; it never retries or caches.
type Service struct {
	client repositories.WeatherClient
	l      *observe.Logger
}

func NewService(client repositories.WeatherClient, l *observe.Logger) *Service {
	if l == nil {
		l = observe.NewNopLogger()
	}
	return &Service{
		client: client,
		l:      l,
	}
}

// Forecast fetches the report for a detail view.
func (s *Service) Forecast(ctx context.Context, query string) (models.WeatherReport, error) {
	start := time.Now()
	s.l.Info("starting forecast fetch", map[string]any{
		"query":    query,
		"provider": s.client.Name(),
	})

	report, err := s.client.FetchForecast(ctx, query)
	if err != nil {
		fields := map[string]any{
			"query":    query,
			"provider": s.client.Name(),
		}
		// a rejected query is the caller's mistake, not ours
		if errors.Is(err, repositories.ErrProvider) {
			fields["err"] = err.Error()
			s.l.Warning("provider rejected forecast request", fields)
		} else {
			s.l.Error(err, fields)
		}
		return models.WeatherReport{}, err
	}

	s.l.Info("completed forecast fetch", map[string]any{
		"query":    query,
		"location": report.Location.Name,
		"days":     len(report.Forecast.Days),
		"duration": time.Since(start).String(),
	})

	return report, nil
}

// Suggestions fetches autocomplete matches. Failures are logged at warning
// level and returned; keeping the previous list is the caller's decision.
func (s *Service) Suggestions(ctx context.Context, query string) ([]models.CitySuggestion, error) {
	suggestions, err := s.client.FetchSuggestions(ctx, query)
	if err != nil {
		s.l.Warning("failed to fetch suggestions", map[string]any{
			"query": query,
			"err":   err.Error(),
		})
		return nil, err
	}

	s.l.Debug("fetched suggestions", map[string]any{
		"query": query,
		"count": len(suggestions),
	})

	return suggestions, nil
}

// ForecastView resolves every presentation field of report.
func ForecastView(report models.WeatherReport, style display.DateStyle) models.ForecastView {
	view := models.ForecastView{
		Location: report.Location,
		Current: models.CurrentView{
			CurrentConditions: report.Current,
			IconURL:           report.Current.Condition.IconURL(),
		},
		Days: make([]models.DayView, 0, len(report.Forecast.Days)),
	}

	if today, ok := report.Today(); ok {
		astro := astroView(today.Astro)
		view.Today = &astro
	}

	for _, d := range report.Forecast.Days {
		view.Days = append(view.Days, models.DayView{
			Date:     d.Date,
			Label:    display.FormatForecastDate(d.Date, style),
			Day:      d.Day,
			IconURL:  d.Day.Condition.IconURL(),
			Astro:    astroView(d.Astro),
			MaxTemp:  display.WholeDegrees(d.Day.MaxTempC),
			MinTemp:  display.WholeDegrees(d.Day.MinTempC),
			MaxWind:  display.WholeDegrees(d.Day.MaxWindKph),
			ShowRain: d.Day.RainChancePct > 0,
			ShowSnow: d.Day.SnowChancePct > 0,
		})
	}

	return view
}

func astroView(a models.AstroInfo) models.AstroView {
	return models.AstroView{
		AstroInfo:          a,
		MoonIcon:           string(display.ClassifyMoonPhase(a.MoonPhase)),
		SunIcon:            string(display.SunIcon(a.IsSunUp)),
		MoonVisibilityIcon: string(display.MoonVisibilityIcon(a.IsMoonUp)),
	}
}
