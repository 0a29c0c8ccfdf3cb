package dto

// CityResponse ciudad del lookup.
type CityResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}
