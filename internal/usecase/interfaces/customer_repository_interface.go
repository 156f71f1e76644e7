package interfaces

import (
	"context"
	"oficina_os/internal/domain/entities"
)

// ICustomerRepository abstracts persistence for Customer.
//
// Lookups that find nothing return a zero entity (ID == "") and a nil error.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) (bool, error)
}
