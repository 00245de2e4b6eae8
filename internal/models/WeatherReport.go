package models

import "fmt"

// WeatherReport is the snapshot produced by one forecast call. A new value is
// built per request; nothing mutates it afterwards.
type WeatherReport struct {
	Location Location          `json:"location"`
	Current  CurrentConditions `json:"current"`
	Forecast Forecast          `json:"forecast"`
}

// Today is the forecast day matching the location's local date, or the first
// day when the local time is missing or outside the forecast.
func (r WeatherReport) Today() (ForecastDay, bool) {
	if len(r.Forecast.Days) == 0 {
		return ForecastDay{}, false
	}
	if len(r.Location.LocalTime) >= len("2006-01-02") {
		if i := FilterByDate(r.Forecast.Days, r.Location.LocalTime[:10]); i >= 0 {
			return r.Forecast.Days[i], true
		}
	}
	return r.Forecast.Days[0], true
}

func (r WeatherReport) RequestParams() string {
	return fmt.Sprintf("location: %s, %s days: %d", r.Location.Name, r.Location.Country, len(r.Forecast.Days))
}
