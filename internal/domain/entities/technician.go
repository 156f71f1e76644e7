package entities

import "time"

// Technician is a shop technician. Inactive technicians stay in the catalog
// but should not receive new orders.
type Technician struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
