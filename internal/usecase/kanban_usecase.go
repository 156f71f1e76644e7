package usecase

import (
	"context"
	"errors"
	"oficina_os/internal/domain/catalog"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/domain/workflow"
	"oficina_os/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	ErrColumnNotFound      = workflow.ErrColumnNotFound
	ErrColumnAlreadyExists = errors.New("kanban column already exists")
	ErrInvalidColumnTitle  = errors.New("kanban column title is required")
	ErrColumnInUse         = errors.New("kanban column still has service orders")
)

// IKanbanUseCase exposes the board and the column management around it.
type IKanbanUseCase interface {
	ListColumns(ctx context.Context) ([]entities.KanbanColumn, error)
	CreateColumn(ctx context.Context, title string) (entities.KanbanColumn, error)
	RenameColumn(ctx context.Context, slug, title string) (entities.KanbanColumn, error)
	MoveColumn(ctx context.Context, slug string, index int) ([]entities.KanbanColumn, error)
	DeleteColumn(ctx context.Context, slug string) error
	Board(ctx context.Context) (workflow.Board, error)
	SeedDefaults(ctx context.Context) (int, error)
}

type KanbanUseCase struct {
	columns     interfaces.IKanbanColumnRepository
	orders      interfaces.IServiceOrderRepository
	customers   interfaces.ICustomerRepository
	technicians interfaces.ITechnicianRepository
}

var _ IKanbanUseCase = (*KanbanUseCase)(nil)

func NewKanbanUseCase(
	columns interfaces.IKanbanColumnRepository,
	orders interfaces.IServiceOrderRepository,
	customers interfaces.ICustomerRepository,
	technicians interfaces.ITechnicianRepository,
) *KanbanUseCase {
	return &KanbanUseCase{columns: columns, orders: orders, customers: customers, technicians: technicians}
}

// ListColumns returns the columns by position, ties broken by slug.
func (u *KanbanUseCase) ListColumns(ctx context.Context) ([]entities.KanbanColumn, error) {
	cols, err := u.columns.List(ctx)
	if err != nil {
		return nil, err
	}
	return workflow.SortColumns(cols), nil
}

// CreateColumn derives the slug from the title and appends the column after
// the highest position.
func (u *KanbanUseCase) CreateColumn(ctx context.Context, title string) (entities.KanbanColumn, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.KanbanColumn{}, ErrInvalidColumnTitle
	}
	slug := workflow.Slugify(title)
	if slug == "" {
		return entities.KanbanColumn{}, workflow.ErrEmptySlug
	}

	cols, err := u.columns.List(ctx)
	if err != nil {
		return entities.KanbanColumn{}, err
	}
	col := entities.KanbanColumn{
		Slug:      slug,
		Title:     title,
		Position:  workflow.NextPosition(cols),
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.columns.Create(ctx, col)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		return entities.KanbanColumn{}, ErrColumnAlreadyExists
	}
	if err != nil {
		return entities.KanbanColumn{}, err
	}
	log.Info().Str("slug", created.Slug).Int("position", created.Position).Msg("[kanban][usecase] column created")
	return created, nil
}

// RenameColumn changes the display title. The slug never changes, since
// orders store it as their status.
func (u *KanbanUseCase) RenameColumn(ctx context.Context, slug, title string) (entities.KanbanColumn, error) {
	slug = strings.TrimSpace(slug)
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.KanbanColumn{}, ErrInvalidColumnTitle
	}
	updated, err := u.columns.UpdateTitle(ctx, slug, title)
	if err != nil {
		return entities.KanbanColumn{}, err
	}
	if updated.Slug == "" {
		return entities.KanbanColumn{}, ErrColumnNotFound
	}
	return updated, nil
}

// MoveColumn places slug at index and persists every renumbered position.
func (u *KanbanUseCase) MoveColumn(ctx context.Context, slug string, index int) ([]entities.KanbanColumn, error) {
	cols, err := u.columns.List(ctx)
	if err != nil {
		return nil, err
	}
	ordered, changed, err := workflow.Reorder(cols, strings.TrimSpace(slug), index)
	if err != nil {
		return nil, err
	}
	for _, c := range changed {
		updated, err := u.columns.UpdatePosition(ctx, c.Slug, c.Position)
		if err != nil {
			return nil, err
		}
		if updated.Slug == "" {
			return nil, ErrColumnNotFound
		}
	}
	log.Info().Str("slug", slug).Int("index", index).Int("renumbered", len(changed)).Msg("[kanban][usecase] column moved")
	return ordered, nil
}

// DeleteColumn removes an empty column. A column with orders in it is kept so
// those orders never point at a missing status.
func (u *KanbanUseCase) DeleteColumn(ctx context.Context, slug string) error {
	slug = strings.TrimSpace(slug)
	if _, err := u.getColumn(ctx, slug); err != nil {
		return err
	}
	inColumn, err := u.orders.ListByStatus(ctx, slug)
	if err != nil {
		return err
	}
	if len(inColumn) > 0 {
		return ErrColumnInUse
	}
	deleted, err := u.columns.Delete(ctx, slug)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrColumnNotFound
	}
	return nil
}

func (u *KanbanUseCase) Board(ctx context.Context) (workflow.Board, error) {
	cols, err := u.columns.List(ctx)
	if err != nil {
		return workflow.Board{}, err
	}
	orders, err := u.orders.List(ctx)
	if err != nil {
		return workflow.Board{}, err
	}
	summaries, err := joinSummaries(ctx, u.customers, u.technicians, orders)
	if err != nil {
		return workflow.Board{}, err
	}
	return workflow.Partition(cols, summaries), nil
}

// SeedDefaults stores the default workflow when no column exists yet. It
// returns how many columns were created.
func (u *KanbanUseCase) SeedDefaults(ctx context.Context) (int, error) {
	cols, err := u.columns.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(cols) > 0 {
		return 0, nil
	}
	defaults, err := catalog.DefaultColumns()
	if err != nil {
		return 0, err
	}
	created := 0
	now := time.Now().UTC()
	for _, c := range defaults {
		c.CreatedAt = now
		if _, err := u.columns.Create(ctx, c); err != nil {
			if errors.Is(err, interfaces.ErrAlreadyExists) {
				continue
			}
			return created, err
		}
		created++
	}
	log.Info().Int("created", created).Msg("[kanban][usecase] default columns seeded")
	return created, nil
}

func (u *KanbanUseCase) getColumn(ctx context.Context, slug string) (entities.KanbanColumn, error) {
	if slug == "" {
		return entities.KanbanColumn{}, ErrColumnNotFound
	}
	c, err := u.columns.Get(ctx, slug)
	if err != nil {
		return entities.KanbanColumn{}, err
	}
	if c.Slug == "" {
		return entities.KanbanColumn{}, ErrColumnNotFound
	}
	return c, nil
}
