package request

import (
	"oficina_os/internal/usecase"
	"strings"
)

type BudgetCreateRequest struct {
	LaborCost FlexibleAmount `json:"labor_cost"`
}

type LaborRequest struct {
	LaborCost FlexibleAmount `json:"labor_cost"`
}

// BudgetItemRequest adds a line. With part_id set the catalog part fills the
// fields left empty; price is only taken from the part when it is absent.
type BudgetItemRequest struct {
	PartID      string          `json:"part_id"`
	Description string          `json:"description"`
	Price       *FlexibleAmount `json:"price"`
	Code        string          `json:"code"`
	Brand       string          `json:"brand"`
}

func (r BudgetItemRequest) ToInput() usecase.BudgetItemInput {
	in := usecase.BudgetItemInput{
		PartID:      strings.TrimSpace(r.PartID),
		Description: r.Description,
		Code:        r.Code,
		Brand:       r.Brand,
	}
	if r.Price != nil {
		v := r.Price.Float64()
		in.Price = &v
	}
	return in
}
