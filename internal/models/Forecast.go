package models

import (
	"errors"
	"fmt"
)

// ForecastDays is the window requested from the provider and the exact number
// of days a valid Forecast holds.
const ForecastDays = 7

var (
	ErrForecastLength  = errors.New("forecast length mismatch")
	ErrDuplicateDate   = errors.New("duplicate forecast date")
	ErrValueOutOfRange = errors.New("value out of range")
)

type DaySummary struct {
	MaxTempC      float64   `json:"max_temp_c" example:"14.1"`
	MinTempC      float64   `json:"min_temp_c" example:"7.3"`
	MaxWindKph    float64   `json:"max_wind_kph" example:"22.7"`
	WillRain      int       `json:"will_rain" example:"1"`
	RainChancePct int       `json:"rain_chance_pct" example:"84"`
	WillSnow      int       `json:"will_snow" example:"0"`
	SnowChancePct int       `json:"snow_chance_pct" example:"0"`
	Condition     Condition `json:"condition"`
}

// AstroInfo times are provider display strings ("07:02 AM"), not parsed.
type AstroInfo struct {
	Sunrise   string `json:"sunrise" example:"06:58 AM"`
	Sunset    string `json:"sunset" example:"04:31 PM"`
	Moonrise  string `json:"moonrise" example:"02:15 PM"`
	Moonset   string `json:"moonset" example:"03:40 AM"`
	MoonPhase string `json:"moon_phase" example:"Waxing Gibbous"`
	IsMoonUp  int    `json:"is_moon_up" example:"0"`
	IsSunUp   int    `json:"is_sun_up" example:"1"`
}

// ForecastDay is keyed by Date (YYYY-MM-DD), unique within a Forecast.
type ForecastDay struct {
	Date  string     `json:"date" example:"2025-11-03"`
	Day   DaySummary `json:"day"`
	Astro AstroInfo  `json:"astro"`
}

// Forecast holds the days in chronological order.
type Forecast struct {
	Days []ForecastDay `json:"days"`
}

// Validate checks the shape guarantees callers rely on.
func (f Forecast) Validate() error {
	if len(f.Days) != ForecastDays {
		return fmt.Errorf("%w: got %d days, want %d", ErrForecastLength, len(f.Days), ForecastDays)
	}

	seen := make(map[string]struct{}, len(f.Days))
	for i, d := range f.Days {
		if _, ok := seen[d.Date]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateDate, d.Date)
		}
		seen[d.Date] = struct{}{}

		if err := d.validate(); err != nil {
			return fmt.Errorf("forecastday[%d]: %w", i, err)
		}
	}

	return nil
}

type namedValue struct {
	name  string
	value int
}

func (d ForecastDay) validate() error {
	for _, p := range []namedValue{
		{"daily_chance_of_rain", d.Day.RainChancePct},
		{"daily_chance_of_snow", d.Day.SnowChancePct},
	} {
		if p.value < 0 || p.value > 100 {
			return fmt.Errorf("%w: %s=%d", ErrValueOutOfRange, p.name, p.value)
		}
	}

	for _, f := range []namedValue{
		{"daily_will_it_rain", d.Day.WillRain},
		{"daily_will_it_snow", d.Day.WillSnow},
		{"is_moon_up", d.Astro.IsMoonUp},
		{"is_sun_up", d.Astro.IsSunUp},
	} {
		if f.value != 0 && f.value != 1 {
			return fmt.Errorf("%w: %s=%d", ErrValueOutOfRange, f.name, f.value)
		}
	}

	return nil
}

// FilterByDate returns the index of the day with the matching date, or -1 if not found
func FilterByDate(days []ForecastDay, date string) int {
	for i, d := range days {
		if d.Date == date {
			return i
		}
	}
	return -1
}
