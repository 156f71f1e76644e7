package entities

import "time"

// KanbanColumn is one workflow stage. Slug is also the status value stored on
// service orders; Position is the ascending sort key of the board.
type KanbanColumn struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
