package interfaces

import (
	"context"
	"oficina_os/internal/domain/entities"
)

// IKanbanColumnRepository abstracts persistence for workflow columns.
//
// The slug is the key. Create fails with ErrAlreadyExists on a slug
// collision.
type IKanbanColumnRepository interface {
	Create(ctx context.Context, c entities.KanbanColumn) (entities.KanbanColumn, error)
	Get(ctx context.Context, slug string) (entities.KanbanColumn, error)
	List(ctx context.Context) ([]entities.KanbanColumn, error)
	UpdateTitle(ctx context.Context, slug, title string) (entities.KanbanColumn, error)
	UpdatePosition(ctx context.Context, slug string, position int) (entities.KanbanColumn, error)
	Delete(ctx context.Context, slug string) (bool, error)
}
