package models

// Location identifies where a report applies. LocalTime is kept exactly as the
// provider formats it ("2025-11-03 14:05").
type Location struct {
	Name      string `json:"name" example:"London"`
	Region    string `json:"region" example:"City of London, Greater London"`
	Country   string `json:"country" example:"United Kingdom"`
	LocalTime string `json:"local_time" example:"2025-11-03 14:05"`
}
