package response

import (
	"oficina_os/internal/domain/entities"
	"time"
)

// BudgetResponse is a budget with its computed totals. Totals are derived on
// every read and never stored.
type BudgetResponse struct {
	ID             string                `json:"id"`
	ServiceOrderID string                `json:"service_order_id"`
	Status         string                `json:"status"`
	LaborCost      float64               `json:"labor_cost"`
	Items          []entities.BudgetItem `json:"items"`
	ItemsTotal     float64               `json:"items_total"`
	Total          float64               `json:"total"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	items := b.Items
	if items == nil {
		items = []entities.BudgetItem{}
	}
	return BudgetResponse{
		ID:             b.ID,
		ServiceOrderID: b.ServiceOrderID,
		Status:         string(b.Status),
		LaborCost:      b.LaborCost,
		Items:          items,
		ItemsTotal:     b.ItemsTotal(),
		Total:          b.Total(),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
