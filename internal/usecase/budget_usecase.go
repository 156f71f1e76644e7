package usecase

import (
	"context"
	"errors"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrBudgetAlreadyExists = errors.New("budget already exists for this service order")
	ErrInvalidBudgetID     = errors.New("invalid budget id")
	ErrBudgetNotPending    = errors.New("budget is no longer pending")
	ErrInvalidAmount       = errors.New("amount must not be negative")
	ErrInvalidBudgetItem   = errors.New("budget item description is required")
	ErrBudgetItemNotFound  = errors.New("budget item not found")
)

// BudgetItemInput is a new line. When PartID is set the part pre-fills the
// description, code, brand and, if Price is nil, the price.
type BudgetItemInput struct {
	PartID      string
	Description string
	Price       *float64
	Code        string
	Brand       string
}

// IBudgetUseCase exposes the budget (orçamento) of a service order.
//
//   - Create => pending budget, one per order
//   - AddItem / RemoveItem / UpdateLabor => only while pending
//   - Approve / Reject => pending -> approved | rejected
type IBudgetUseCase interface {
	Create(ctx context.Context, orderID string, labor float64) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Budget, error)
	AddItem(ctx context.Context, budgetID string, in BudgetItemInput) (entities.Budget, error)
	RemoveItem(ctx context.Context, budgetID, itemID string) (entities.Budget, error)
	UpdateLabor(ctx context.Context, budgetID string, labor float64) (entities.Budget, error)
	Approve(ctx context.Context, budgetID string) (entities.Budget, error)
	Reject(ctx context.Context, budgetID string) (entities.Budget, error)
}

type BudgetUseCase struct {
	repo   interfaces.IBudgetRepository
	orders interfaces.IServiceOrderRepository
	parts  interfaces.IPartRepository
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository, orders interfaces.IServiceOrderRepository, parts interfaces.IPartRepository) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, orders: orders, parts: parts}
}

func (u *BudgetUseCase) Create(ctx context.Context, orderID string, labor float64) (entities.Budget, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Budget{}, ErrInvalidOrderID
	}
	if labor < 0 {
		return entities.Budget{}, ErrInvalidAmount
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Budget{}, err
	}
	if o.ID == "" {
		return entities.Budget{}, ErrOrderNotFound
	}

	// Budget id equals the order id: the conditional put is the one-per-order guard.
	now := time.Now().UTC()
	b := entities.Budget{
		ID:             orderID,
		ServiceOrderID: orderID,
		Status:         entities.BudgetStatusPending,
		LaborCost:      entities.RoundCents(labor),
		Items:          []entities.BudgetItem{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, b)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		return entities.Budget{}, ErrBudgetAlreadyExists
	}
	if err != nil {
		return entities.Budget{}, err
	}
	log.Info().Str("budget_id", created.ID).Float64("labor_cost", created.LaborCost).Msg("[budget][usecase] created")
	return created, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

// GetByOrderID returns the single budget of an order.
func (u *BudgetUseCase) GetByOrderID(ctx context.Context, orderID string) (entities.Budget, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Budget{}, ErrInvalidOrderID
	}
	return u.GetByID(ctx, orderID)
}

func (u *BudgetUseCase) AddItem(ctx context.Context, budgetID string, in BudgetItemInput) (entities.Budget, error) {
	b, err := u.pending(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}

	item := entities.BudgetItem{
		Description: strings.TrimSpace(in.Description),
		Code:        strings.TrimSpace(in.Code),
		Brand:       strings.TrimSpace(in.Brand),
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if partID := strings.TrimSpace(in.PartID); partID != "" {
		p, err := u.parts.GetByID(ctx, partID)
		if err != nil {
			return entities.Budget{}, err
		}
		if p.ID == "" {
			return entities.Budget{}, ErrPartNotFound
		}
		if item.Description == "" {
			item.Description = p.Description
		}
		if item.Code == "" {
			item.Code = p.Code
		}
		if item.Brand == "" {
			item.Brand = p.Brand
		}
		if in.Price == nil {
			item.Price = p.DefaultPrice
		}
	}
	if item.Description == "" {
		return entities.Budget{}, ErrInvalidBudgetItem
	}
	if item.Price < 0 {
		return entities.Budget{}, ErrInvalidAmount
	}

	item.ID = uuid.NewString()
	item.BudgetID = b.ID
	item.Price = entities.RoundCents(item.Price)
	item.CreatedAt = time.Now().UTC()

	if _, err := u.repo.AddItem(ctx, item); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Budget{}, ErrBudgetNotPending
		}
		return entities.Budget{}, err
	}
	return u.GetByID(ctx, b.ID)
}

func (u *BudgetUseCase) RemoveItem(ctx context.Context, budgetID, itemID string) (entities.Budget, error) {
	b, err := u.pending(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	itemID = strings.TrimSpace(itemID)
	if !hasItem(b, itemID) {
		return entities.Budget{}, ErrBudgetItemNotFound
	}
	if err := u.repo.RemoveItem(ctx, b.ID, itemID); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Budget{}, ErrBudgetNotPending
		}
		return entities.Budget{}, err
	}
	return u.GetByID(ctx, b.ID)
}

func (u *BudgetUseCase) UpdateLabor(ctx context.Context, budgetID string, labor float64) (entities.Budget, error) {
	if labor < 0 {
		return entities.Budget{}, ErrInvalidAmount
	}
	b, err := u.pending(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	updated, err := u.repo.UpdateLabor(ctx, b.ID, entities.RoundCents(labor))
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotPending
	}
	return updated, nil
}

func (u *BudgetUseCase) Approve(ctx context.Context, budgetID string) (entities.Budget, error) {
	return u.decide(ctx, budgetID, entities.BudgetStatusApproved)
}

func (u *BudgetUseCase) Reject(ctx context.Context, budgetID string) (entities.Budget, error) {
	return u.decide(ctx, budgetID, entities.BudgetStatusRejected)
}

func (u *BudgetUseCase) decide(ctx context.Context, budgetID string, status entities.BudgetStatus) (entities.Budget, error) {
	b, err := u.GetByID(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	if !b.CanTransitionTo(status) {
		return entities.Budget{}, ErrBudgetNotPending
	}
	updated, err := u.repo.UpdateStatus(ctx, b.ID, status)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotPending
	}
	log.Info().Str("budget_id", b.ID).Str("status", string(status)).Float64("total", updated.Total()).Msg("[budget][usecase] decided")
	return updated, nil
}

// pending loads the budget and refuses it unless it is still pending.
func (u *BudgetUseCase) pending(ctx context.Context, budgetID string) (entities.Budget, error) {
	b, err := u.GetByID(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	if !b.IsPending() {
		return entities.Budget{}, ErrBudgetNotPending
	}
	return b, nil
}

func hasItem(b entities.Budget, itemID string) bool {
	for _, it := range b.Items {
		if it.ID == itemID {
			return true
		}
	}
	return false
}
