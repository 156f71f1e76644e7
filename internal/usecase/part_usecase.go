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
	ErrPartNotFound  = errors.New("part not found")
	ErrInvalidPartID = errors.New("invalid part id")
	ErrInvalidPart   = errors.New("part description is required and price must not be negative")
)

// IPartUseCase exposes the parts catalog used to pre-fill budget items.
type IPartUseCase interface {
	List(ctx context.Context, query string) ([]entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
	Create(ctx context.Context, p entities.Part) (entities.Part, error)
	Update(ctx context.Context, p entities.Part) (entities.Part, error)
	Delete(ctx context.Context, id string) error
}

type PartUseCase struct {
	repo interfaces.IPartRepository
}

var _ IPartUseCase = (*PartUseCase)(nil)

func NewPartUseCase(repo interfaces.IPartRepository) *PartUseCase {
	return &PartUseCase{repo: repo}
}

// List returns the parts ordered by description. A non-empty query keeps
// only parts whose code, description or brand contains it.
func (u *PartUseCase) List(ctx context.Context, query string) ([]entities.Part, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query != "" {
		filtered := items[:0]
		for _, p := range items {
			if containsFold(p.Code, query) || containsFold(p.Description, query) || containsFold(p.Brand, query) {
				filtered = append(filtered, p)
			}
		}
		items = filtered
	}
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Description) < strings.ToLower(items[j].Description)
	})
	return items, nil
}

func (u *PartUseCase) GetByID(ctx context.Context, id string) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidPartID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Part{}, err
	}
	if p.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return p, nil
}

func (u *PartUseCase) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	p = normalizePart(p)
	if p.Description == "" || p.DefaultPrice < 0 {
		return entities.Part{}, ErrInvalidPart
	}
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.Create(ctx, p)
}

func (u *PartUseCase) Update(ctx context.Context, p entities.Part) (entities.Part, error) {
	p = normalizePart(p)
	if p.ID == "" {
		return entities.Part{}, ErrInvalidPartID
	}
	if p.Description == "" || p.DefaultPrice < 0 {
		return entities.Part{}, ErrInvalidPart
	}
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Part{}, err
	}
	if updated.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return updated, nil
}

func (u *PartUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPartID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPartNotFound
	}
	return nil
}

func normalizePart(p entities.Part) entities.Part {
	p.ID = strings.TrimSpace(p.ID)
	p.Code = strings.TrimSpace(p.Code)
	p.Description = strings.TrimSpace(p.Description)
	p.Brand = strings.TrimSpace(p.Brand)
	p.DefaultPrice = entities.RoundCents(p.DefaultPrice)
	return p
}

func containsFold(s, lowerSub string) bool {
	return strings.Contains(strings.ToLower(s), lowerSub)
}
