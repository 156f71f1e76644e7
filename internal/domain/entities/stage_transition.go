package entities

import "time"

type TransitionKind string

const (
	TransitionKindIntake  TransitionKind = "intake"
	TransitionKindAdvance TransitionKind = "advance"
	TransitionKindMove    TransitionKind = "move"
)

// StageTransition records one status change of a service order, with the
// operator note typed when it happened. FromSlug is empty for the intake entry.
type StageTransition struct {
	ID             string         `json:"id"`
	ServiceOrderID string         `json:"service_order_id"`
	FromSlug       string         `json:"from_slug,omitempty"`
	ToSlug         string         `json:"to_slug"`
	Note           string         `json:"note,omitempty"`
	Kind           TransitionKind `json:"kind"`
	CreatedAt      time.Time      `json:"created_at"`
}
