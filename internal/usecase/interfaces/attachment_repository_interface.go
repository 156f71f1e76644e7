package interfaces

import (
	"context"
	"oficina_os/internal/domain/entities"
)

// IAttachmentRepository stores attachment records. LinkToOrder only claims
// draft attachments (or re-links to the same order); an attachment owned by
// another order yields ErrAttachmentAlreadyLinked.
type IAttachmentRepository interface {
	Create(ctx context.Context, a entities.Attachment) (entities.Attachment, error)
	GetByID(ctx context.Context, id string) (entities.Attachment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Attachment, error)
	LinkToOrder(ctx context.Context, id, orderID string) (entities.Attachment, error)
	Delete(ctx context.Context, id string) (bool, error)
}
