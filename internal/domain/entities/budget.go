package entities

import (
	"math"
	"time"
)

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
// Domain notes:
//   - Only pending -> approved and pending -> rejected exist.
//   - Items and labor cost are frozen once the status leaves pending.
type BudgetStatus string

const (
	BudgetStatusPending  BudgetStatus = "pending"
	BudgetStatusApproved BudgetStatus = "approved"
	BudgetStatusRejected BudgetStatus = "rejected"
)

// Budget is the quote attached to one service order.
//
// Storage model (DynamoDB):
//   - PK: id, which is the owning service order id (one budget per order)
//
// Monetary representation:
//   - The total is never stored; see Total.
type Budget struct {
	ID             string       `json:"id"`
	ServiceOrderID string       `json:"service_order_id"`
	Status         BudgetStatus `json:"status"`
	LaborCost      float64      `json:"labor_cost"`
	Items          []BudgetItem `json:"items"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// BudgetItem is a part or service line. Code and Brand are copied from the
// catalog part at selection time; they are not a live reference.
type BudgetItem struct {
	ID          string    `json:"id"`
	BudgetID    string    `json:"budget_id"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Code        string    `json:"code,omitempty"`
	Brand       string    `json:"brand,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (b Budget) IsPending() bool {
	return b.Status == BudgetStatusPending
}

// CanTransitionTo reports whether status is a legal next status.
func (b Budget) CanTransitionTo(status BudgetStatus) bool {
	if !b.IsPending() {
		return false
	}
	return status == BudgetStatusApproved || status == BudgetStatusRejected
}

// ItemsTotal is the sum of the item prices.
func (b Budget) ItemsTotal() float64 {
	sum := 0.0
	for _, it := range b.Items {
		sum += it.Price
	}
	return RoundCents(sum)
}

// Total is the items total plus labor cost. An empty budget totals its labor.
func (b Budget) Total() float64 {
	return RoundCents(b.ItemsTotal() + b.LaborCost)
}

// RoundCents rounds a monetary amount to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
