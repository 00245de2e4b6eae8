package repositories

import (
	"fmt"
	"strings"

	"weather-finder/internal/models"
)

// Wire types mirror the provider's JSON. Every field is a pointer so a missing
// key can be told apart from a zero value.

type wireCondition struct {
	Text *string `json:"text"`
	Icon *string `json:"icon"`
}

type wireLocation struct {
	Name      *string `json:"name"`
	Region    *string `json:"region"`
	Country   *string `json:"country"`
	Localtime *string `json:"localtime"`
}

type wireCurrent struct {
	TempC      *float64       `json:"temp_c"`
	FeelslikeC *float64       `json:"feelslike_c"`
	WindKph    *float64       `json:"wind_kph"`
	Condition  *wireCondition `json:"condition"`
}

type wireDay struct {
	MaxtempC          *float64       `json:"maxtemp_c"`
	MintempC          *float64       `json:"mintemp_c"`
	MaxwindKph        *float64       `json:"maxwind_kph"`
	DailyWillItRain   *int           `json:"daily_will_it_rain"`
	DailyChanceOfRain *int           `json:"daily_chance_of_rain"`
	DailyWillItSnow   *int           `json:"daily_will_it_snow"`
	DailyChanceOfSnow *int           `json:"daily_chance_of_snow"`
	Condition         *wireCondition `json:"condition"`
}

type wireAstro struct {
	Sunrise   *string `json:"sunrise"`
	Sunset    *string `json:"sunset"`
	Moonrise  *string `json:"moonrise"`
	Moonset   *string `json:"moonset"`
	MoonPhase *string `json:"moon_phase"`
	IsMoonUp  *int    `json:"is_moon_up"`
	IsSunUp   *int    `json:"is_sun_up"`
}

type wireForecastDay struct {
	Date  *string    `json:"date"`
	Day   *wireDay   `json:"day"`
	Astro *wireAstro `json:"astro"`
}

type wireForecast struct {
	Forecastday []wireForecastDay `json:"forecastday"`
}

type wireForecastResponse struct {
	Location *wireLocation `json:"location"`
	Current  *wireCurrent  `json:"current"`
	Forecast *wireForecast `json:"forecast"`
}

type wireSuggestion struct {
	ID      *int64  `json:"id"`
	Name    *string `json:"name"`
	Region  *string `json:"region"`
	Country *string `json:"country"`
}

type wireProviderError struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// fieldReader dereferences wire fields and records the JSON path of every
// required field that was absent.
type fieldReader struct {
	missing []string
}

func (r *fieldReader) present(path string, ok bool) bool {
	if !ok {
		r.missing = append(r.missing, path)
	}
	return ok
}

func (r *fieldReader) str(path string, v *string) string {
	if !r.present(path, v != nil) {
		return ""
	}
	return *v
}

func (r *fieldReader) float(path string, v *float64) float64 {
	if !r.present(path, v != nil) {
		return 0
	}
	return *v
}

func (r *fieldReader) integer(path string, v *int) int {
	if !r.present(path, v != nil) {
		return 0
	}
	return *v
}

func (r *fieldReader) err() error {
	if len(r.missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required fields: %s", strings.Join(r.missing, ", "))
}

func (r *fieldReader) condition(path string, c *wireCondition) models.Condition {
	if !r.present(path, c != nil) {
		return models.Condition{}
	}
	return models.Condition{
		Text: r.str(path+".text", c.Text),
		Icon: r.str(path+".icon", c.Icon),
	}
}

func (r *fieldReader) location(l *wireLocation) models.Location {
	if !r.present("location", l != nil) {
		return models.Location{}
	}
	return models.Location{
		Name:      r.str("location.name", l.Name),
		Region:    r.str("location.region", l.Region),
		Country:   r.str("location.country", l.Country),
		LocalTime: r.str("location.localtime", l.Localtime),
	}
}

func (r *fieldReader) current(c *wireCurrent) models.CurrentConditions {
	if !r.present("current", c != nil) {
		return models.CurrentConditions{}
	}
	return models.CurrentConditions{
		TempC:      r.float("current.temp_c", c.TempC),
		FeelsLikeC: r.float("current.feelslike_c", c.FeelslikeC),
		WindKph:    r.float("current.wind_kph", c.WindKph),
		Condition:  r.condition("current.condition", c.Condition),
	}
}

func (r *fieldReader) forecastDay(path string, d wireForecastDay) models.ForecastDay {
	day := models.ForecastDay{Date: r.str(path+".date", d.Date)}

	if r.present(path+".day", d.Day != nil) {
		p := path + ".day"
		day.Day = models.DaySummary{
			MaxTempC:      r.float(p+".maxtemp_c", d.Day.MaxtempC),
			MinTempC:      r.float(p+".mintemp_c", d.Day.MintempC),
			MaxWindKph:    r.float(p+".maxwind_kph", d.Day.MaxwindKph),
			WillRain:      r.integer(p+".daily_will_it_rain", d.Day.DailyWillItRain),
			RainChancePct: r.integer(p+".daily_chance_of_rain", d.Day.DailyChanceOfRain),
			WillSnow:      r.integer(p+".daily_will_it_snow", d.Day.DailyWillItSnow),
			SnowChancePct: r.integer(p+".daily_chance_of_snow", d.Day.DailyChanceOfSnow),
			Condition:     r.condition(p+".condition", d.Day.Condition),
		}
	}

	if r.present(path+".astro", d.Astro != nil) {
		p := path + ".astro"
		day.Astro = models.AstroInfo{
			Sunrise:   r.str(p+".sunrise", d.Astro.Sunrise),
			Sunset:    r.str(p+".sunset", d.Astro.Sunset),
			Moonrise:  r.str(p+".moonrise", d.Astro.Moonrise),
			Moonset:   r.str(p+".moonset", d.Astro.Moonset),
			MoonPhase: r.str(p+".moon_phase", d.Astro.MoonPhase),
			IsMoonUp:  r.integer(p+".is_moon_up", d.Astro.IsMoonUp),
			IsSunUp:   r.integer(p+".is_sun_up", d.Astro.IsSunUp),
		}
	}

	return day
}

// toWeatherReport maps the wire response field by field and validates the
// result. Any problem is reported as an error; the caller wraps it.
func (w wireForecastResponse) toWeatherReport() (models.WeatherReport, error) {
	var r fieldReader

	report := models.WeatherReport{
		Location: r.location(w.Location),
		Current:  r.current(w.Current),
	}

	if r.present("forecast", w.Forecast != nil) {
		days := make([]models.ForecastDay, 0, len(w.Forecast.Forecastday))
		for i, d := range w.Forecast.Forecastday {
			days = append(days, r.forecastDay(fmt.Sprintf("forecast.forecastday[%d]", i), d))
		}
		report.Forecast = models.Forecast{Days: days}
	}

	if err := r.err(); err != nil {
		return models.WeatherReport{}, err
	}

	if err := report.Forecast.Validate(); err != nil {
		return models.WeatherReport{}, err
	}

	return report, nil
}

func toCitySuggestions(ws []wireSuggestion) ([]models.CitySuggestion, error) {
	var r fieldReader

	suggestions := make([]models.CitySuggestion, 0, len(ws))
	for i, s := range ws {
		path := fmt.Sprintf("[%d]", i)
		var id int64
		if r.present(path+".id", s.ID != nil) {
			id = *s.ID
		}
		suggestions = append(suggestions, models.CitySuggestion{
			ID:      id,
			Name:    r.str(path+".name", s.Name),
			Region:  r.str(path+".region", s.Region),
			Country: r.str(path+".country", s.Country),
		})
	}

	if err := r.err(); err != nil {
		return nil, err
	}

	return suggestions, nil
}
