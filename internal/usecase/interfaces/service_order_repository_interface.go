package interfaces

import (
	"context"
	"oficina_os/internal/domain/entities"
)

// IServiceOrderRepository abstracts persistence for ServiceOrder.
//
// The storage model must be able to:
//   - list every order, or only the orders sitting in one column
//   - change the status only when the stored status still matches the one
//     the caller read (zero entity when the guard fails)
//   - count the orders pointing at a technician
type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	ListByStatus(ctx context.Context, status string) ([]entities.ServiceOrder, error)
	CountByTechnician(ctx context.Context, technicianID string) (int, error)
	UpdateDetails(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id, from, to string) (entities.ServiceOrder, error)
}

// ICounterRepository hands out sequential numbers per counter name.
type ICounterRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}

type IStageTransitionRepository interface {
	Create(ctx context.Context, t entities.StageTransition) (entities.StageTransition, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.StageTransition, error)
}
