package models

// ForecastView is a WeatherReport with every display field resolved, ready
// for a presentation layer that does no formatting of its own.
type ForecastView struct {
	Location Location    `json:"location"`
	Current  CurrentView `json:"current"`
	Today    *AstroView  `json:"today,omitempty"`
	Days     []DayView   `json:"days"`
}

type CurrentView struct {
	CurrentConditions
	IconURL string `json:"icon_url" example:"https://cdn.weatherapi.com/weather/64x64/day/116.png"`
}

type AstroView struct {
	AstroInfo
	MoonIcon           string `json:"moon_icon" example:"moonphase.waxing.gibbous"`
	SunIcon            string `json:"sun_icon" example:"sun.max.fill"`
	MoonVisibilityIcon string `json:"moon_visibility_icon" example:"moon.zzz.fill"`
}

type DayView struct {
	Date     string     `json:"date" example:"2025-11-03"`
	Label    string     `json:"label" example:"Lun 3 Nov"`
	Day      DaySummary `json:"day"`
	IconURL  string     `json:"icon_url" example:"https://cdn.weatherapi.com/weather/64x64/day/176.png"`
	Astro    AstroView  `json:"astro"`
	MaxTemp  int        `json:"max_temp" example:"14"`
	MinTemp  int        `json:"min_temp" example:"7"`
	MaxWind  int        `json:"max_wind" example:"22"`
	ShowRain bool       `json:"show_rain"`
	ShowSnow bool       `json:"show_snow"`
}
