package interfaces

import (
	"context"
	"oficina_os/internal/domain/entities"
)

// IBudgetRepository abstracts persistence for Budget and its items.
//
// The budget id equals the owning service order id, so Create enforces one
// budget per order (ErrAlreadyExists). Every mutation is guarded by the
// stored status still being pending:
//   - UpdateLabor and UpdateStatus return a zero entity when the guard fails
//   - AddItem and RemoveItem return ErrConditionFailed when the guard fails
type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	UpdateLabor(ctx context.Context, id string, labor float64) (entities.Budget, error)
	UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error)
	AddItem(ctx context.Context, item entities.BudgetItem) (entities.BudgetItem, error)
	RemoveItem(ctx context.Context, budgetID, itemID string) error
}
