package entities

import "time"

// Part is a catalog entry used to pre-fill budget items.
type Part struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	Description  string    `json:"description"`
	Brand        string    `json:"brand"`
	DefaultPrice float64   `json:"default_price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
