package usecase

import (
	"context"
	"errors"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrInvalidCustomer   = errors.New("customer name and whatsapp are required")
)

// ICustomerUseCase exposes customer record operations.
type ICustomerUseCase interface {
	List(ctx context.Context, query string) ([]entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List returns the customers ordered by name. A non-empty query keeps only
// those whose name or whatsapp contains it.
func (u *CustomerUseCase) List(ctx context.Context, query string) ([]entities.Customer, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query != "" {
		filtered := items[:0]
		for _, c := range items {
			if containsFold(c.Name, query) || containsFold(c.WhatsApp, query) {
				filtered = append(filtered, c)
			}
		}
		items = filtered
	}
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c = normalizeCustomer(c)
	if c.Name == "" || c.WhatsApp == "" {
		return entities.Customer{}, ErrInvalidCustomer
	}
	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c = normalizeCustomer(c)
	if c.ID == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	if c.Name == "" || c.WhatsApp == "" {
		return entities.Customer{}, ErrInvalidCustomer
	}
	c.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return updated, nil
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCustomerID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCustomerNotFound
	}
	return nil
}

func normalizeCustomer(c entities.Customer) entities.Customer {
	c.ID = strings.TrimSpace(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	c.WhatsApp = strings.TrimSpace(c.WhatsApp)
	c.TaxID = strings.TrimSpace(c.TaxID)
	c.Address = strings.TrimSpace(c.Address)
	return c
}
