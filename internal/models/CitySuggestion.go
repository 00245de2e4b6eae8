package models

// CitySuggestion is one autocomplete match, in provider rank order.
type CitySuggestion struct {
	ID      int64  `json:"id" example:"2801268"`
	Name    string `json:"name" example:"London"`
	Region  string `json:"region" example:"City of London, Greater London"`
	Country string `json:"country" example:"United Kingdom"`
}

// Label is the secondary line shown under the city name.
func (s CitySuggestion) Label() string {
	switch {
	case s.Region == "":
		return s.Country
	case s.Country == "":
		return s.Region
	default:
		return s.Region + ", " + s.Country
	}
}
