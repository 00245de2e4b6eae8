package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sevenDays() []ForecastDay {
	days := make([]ForecastDay, 0, ForecastDays)
	for i := 0; i < ForecastDays; i++ {
		days = append(days, ForecastDay{
			Date:  fmt.Sprintf("2025-11-%02d", i+3),
			Day:   DaySummary{RainChancePct: 10 * i, WillRain: i % 2},
			Astro: AstroInfo{MoonPhase: "Waxing Gibbous", IsSunUp: 1},
		})
	}
	return days
}

func TestForecastValidate(t *testing.T) {
	require.NoError(t, Forecast{Days: sevenDays()}.Validate())

	short := Forecast{Days: sevenDays()[:3]}
	assert.ErrorIs(t, short.Validate(), ErrForecastLength)

	dup := sevenDays()
	dup[4].Date = dup[1].Date
	assert.ErrorIs(t, Forecast{Days: dup}.Validate(), ErrDuplicateDate)

	pct := sevenDays()
	pct[2].Day.SnowChancePct = 101
	err := Forecast{Days: pct}.Validate()
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	assert.Contains(t, err.Error(), "forecastday[2]")
	assert.Contains(t, err.Error(), "daily_chance_of_snow=101")

	flag := sevenDays()
	flag[0].Astro.IsMoonUp = 2
	assert.ErrorIs(t, Forecast{Days: flag}.Validate(), ErrValueOutOfRange)
}

func TestFilterByDate(t *testing.T) {
	days := sevenDays()
	assert.Equal(t, 0, FilterByDate(days, "2025-11-03"))
	assert.Equal(t, 6, FilterByDate(days, "2025-11-09"))
	assert.Equal(t, -1, FilterByDate(days, "2025-12-01"))
}

func TestConditionIconURL(t *testing.T) {
	tests := map[string]string{
		"//cdn.weatherapi.com/weather/64x64/day/116.png":       "https://cdn.weatherapi.com/weather/64x64/day/116.png",
		"https://cdn.weatherapi.com/weather/64x64/day/116.png": "https://cdn.weatherapi.com/weather/64x64/day/116.png",
		"cdn.weatherapi.com/x.png":                             "https://cdn.weatherapi.com/x.png",
		"":                                                     "",
	}
	for icon, want := range tests {
		assert.Equal(t, want, Condition{Icon: icon}.IconURL(), icon)
	}
}

func TestWeatherReportToday(t *testing.T) {
	_, ok := WeatherReport{}.Today()
	assert.False(t, ok)

	report := WeatherReport{Forecast: Forecast{Days: sevenDays()}}
	today, ok := report.Today()
	require.True(t, ok)
	assert.Equal(t, "2025-11-03", today.Date)

	// past local midnight the provider may still lead with yesterday
	report.Location.LocalTime = "2025-11-04 00:12"
	today, ok = report.Today()
	require.True(t, ok)
	assert.Equal(t, "2025-11-04", today.Date)

	report.Location.LocalTime = "2026-01-01 08:00"
	today, _ = report.Today()
	assert.Equal(t, "2025-11-03", today.Date)
}

func TestCitySuggestionLabel(t *testing.T) {
	assert.Equal(t, "City of London, Greater London, United Kingdom",
		CitySuggestion{Region: "City of London, Greater London", Country: "United Kingdom"}.Label())
	assert.Equal(t, "France", CitySuggestion{Country: "France"}.Label())
	assert.Equal(t, "Jalisco", CitySuggestion{Region: "Jalisco"}.Label())
}
