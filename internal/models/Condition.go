package models

import "strings"

type Condition struct {
	Text string `json:"text" example:"Partly cloudy"`
	// Icon is protocol-relative as served by the provider
	// ("//cdn.weatherapi.com/weather/64x64/day/116.png").
	Icon string `json:"icon" example:"//cdn.weatherapi.com/weather/64x64/day/116.png"`
}

// IconURL returns the icon as an absolute https URL.
func (c Condition) IconURL() string {
	switch {
	case c.Icon == "":
		return ""
	case strings.HasPrefix(c.Icon, "//"):
		return "https:" + c.Icon
	case strings.Contains(c.Icon, "://"):
		return c.Icon
	default:
		return "https://" + strings.TrimPrefix(c.Icon, "/")
	}
}

type CurrentConditions struct {
	TempC      float64   `json:"temp_c" example:"12.4"`
	FeelsLikeC float64   `json:"feels_like_c" example:"10.9"`
	WindKph    float64   `json:"wind_kph" example:"14.8"`
	Condition  Condition `json:"condition"`
}
