package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"weather-finder/internal/display"
	"weather-finder/internal/models"
	"weather-finder/internal/services/search"
)

// console serializes writes from the input loop and the session callback.
type console struct {
	mu    sync.Mutex
	out   io.Writer
	limit int
}

func newConsole(out io.Writer, limit int) *console {
	return &console{out: out, limit: limit}
}

func (c *console) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, format, args...)
}

// visible trims suggestions to what the list shows.
func (c *console) visible(suggestions []models.CitySuggestion) []models.CitySuggestion {
	if len(suggestions) > c.limit {
		return suggestions[:c.limit]
	}
	return suggestions
}

func (c *console) suggestions(res search.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if res.Err != nil {
		fmt.Fprintf(c.out, "! suggestions for %q failed: %v\n", res.Query, res.Err)
	}

	list := c.visible(res.Suggestions)
	if len(list) == 0 {
		if res.Err == nil {
			fmt.Fprintln(c.out, "  (no suggestions)")
		}
		return
	}
	for i, s := range list {
		fmt.Fprintf(c.out, "  %d. %s\n     %s\n", i+1, s.Name, s.Label())
	}
}

func (c *console) forecast(view models.ForecastView) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", strings.ToUpper(view.Location.Name))
	if label := (models.CitySuggestion{Region: view.Location.Region, Country: view.Location.Country}).Label(); label != "" {
		fmt.Fprintf(&b, "%s\n", label)
	}
	fmt.Fprintf(&b, "%d° %s  (feels like %d°, wind %d km/h)\n",
		display.WholeDegrees(view.Current.TempC),
		view.Current.Condition.Text,
		display.WholeDegrees(view.Current.FeelsLikeC),
		display.WholeDegrees(view.Current.WindKph),
	)

	if view.Today != nil {
		t := view.Today
		fmt.Fprintf(&b, "[%s] sunrise %s  sunset %s\n", t.SunIcon, t.Sunrise, t.Sunset)
		fmt.Fprintf(&b, "[%s] [%s] %s  moonrise %s  moonset %s\n", t.MoonIcon, t.MoonVisibilityIcon, t.MoonPhase, t.Moonrise, t.Moonset)
	}

	b.WriteString("\n")
	for _, d := range view.Days {
		fmt.Fprintf(&b, "%-22s %4d° / %4d°  %3d km/h  [%s]", d.Label, d.MaxTemp, d.MinTemp, d.MaxWind, d.Astro.MoonIcon)
		if d.ShowRain {
			fmt.Fprintf(&b, "  rain %d%%", d.Day.RainChancePct)
		}
		if d.ShowSnow {
			fmt.Fprintf(&b, "  snow %d%%", d.Day.SnowChancePct)
		}
		fmt.Fprintf(&b, "  %s\n", d.Day.Condition.Text)
	}

	fmt.Fprint(c.out, b.String())
}
