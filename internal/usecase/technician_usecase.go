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
	"github.com/rs/zerolog/log"
)

var (
	ErrTechnicianNotFound  = errors.New("technician not found")
	ErrInvalidTechnicianID = errors.New("invalid technician id")
	ErrInvalidTechnician   = errors.New("technician name is required")
	ErrTechnicianInUse     = errors.New("technician is assigned to service orders")
	ErrTechnicianInactive  = errors.New("technician is inactive")
)

type ITechnicianUseCase interface {
	List(ctx context.Context) ([]entities.Technician, error)
	GetByID(ctx context.Context, id string) (entities.Technician, error)
	Create(ctx context.Context, t entities.Technician) (entities.Technician, error)
	Update(ctx context.Context, t entities.Technician) (entities.Technician, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Technician, error)
	Delete(ctx context.Context, id string) error
}

type TechnicianUseCase struct {
	repo   interfaces.ITechnicianRepository
	orders interfaces.IServiceOrderRepository
}

var _ ITechnicianUseCase = (*TechnicianUseCase)(nil)

func NewTechnicianUseCase(repo interfaces.ITechnicianRepository, orders interfaces.IServiceOrderRepository) *TechnicianUseCase {
	return &TechnicianUseCase{repo: repo, orders: orders}
}

func (u *TechnicianUseCase) List(ctx context.Context) ([]entities.Technician, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}

func (u *TechnicianUseCase) GetByID(ctx context.Context, id string) (entities.Technician, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Technician{}, ErrInvalidTechnicianID
	}
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Technician{}, err
	}
	if t.ID == "" {
		return entities.Technician{}, ErrTechnicianNotFound
	}
	return t, nil
}

// Create stores a new technician. New technicians start active.
func (u *TechnicianUseCase) Create(ctx context.Context, t entities.Technician) (entities.Technician, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return entities.Technician{}, ErrInvalidTechnician
	}
	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.Active = true
	t.CreatedAt = now
	t.UpdatedAt = now
	return u.repo.Create(ctx, t)
}

func (u *TechnicianUseCase) Update(ctx context.Context, t entities.Technician) (entities.Technician, error) {
	t.ID = strings.TrimSpace(t.ID)
	t.Name = strings.TrimSpace(t.Name)
	if t.ID == "" {
		return entities.Technician{}, ErrInvalidTechnicianID
	}
	if t.Name == "" {
		return entities.Technician{}, ErrInvalidTechnician
	}
	t.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, t)
	if err != nil {
		return entities.Technician{}, err
	}
	if updated.ID == "" {
		return entities.Technician{}, ErrTechnicianNotFound
	}
	return updated, nil
}

func (u *TechnicianUseCase) SetActive(ctx context.Context, id string, active bool) (entities.Technician, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Technician{}, ErrInvalidTechnicianID
	}
	updated, err := u.repo.SetActive(ctx, id, active)
	if err != nil {
		return entities.Technician{}, err
	}
	if updated.ID == "" {
		return entities.Technician{}, ErrTechnicianNotFound
	}
	return updated, nil
}

// Delete removes a technician that no service order points at.
func (u *TechnicianUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTechnicianID
	}
	n, err := u.orders.CountByTechnician(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Info().Str("technician_id", id).Int("orders", n).Msg("[technician][usecase] delete refused, technician in use")
		return ErrTechnicianInUse
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTechnicianNotFound
	}
	return nil
}
