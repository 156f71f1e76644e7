package usecase

import (
	"context"
	"errors"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/domain/workflow"
	"oficina_os/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrAttachmentNotFound  = errors.New("attachment not found")
	ErrInvalidAttachmentID = errors.New("invalid attachment id")
	ErrInvalidMediaType    = errors.New("media_type must be photo or video")
	ErrEmptyUpload         = errors.New("upload has no content")
	ErrInvalidStep         = errors.New("step must be a kanban column slug")
	ErrAttachmentLinked    = errors.New("attachment already belongs to another service order")
)

// UploadInput is a binary attachment. OrderID is empty when the file belongs
// to an intake draft; it is linked once the order exists.
type UploadInput struct {
	interfaces.MediaUpload
	OrderID   string
	Step      string
	MediaType entities.MediaType
	Caption   string
}

// LinkInput is an external video reference.
type LinkInput struct {
	URL     string
	OrderID string
	Step    string
	Caption string
}

type IAttachmentUseCase interface {
	Upload(ctx context.Context, in UploadInput) (entities.Attachment, error)
	AddLink(ctx context.Context, in LinkInput) (entities.Attachment, error)
	LinkToOrder(ctx context.Context, id, orderID string) (entities.Attachment, error)
	Delete(ctx context.Context, id string) error
}

type AttachmentUseCase struct {
	repo    interfaces.IAttachmentRepository
	orders  interfaces.IServiceOrderRepository
	columns interfaces.IKanbanColumnRepository
	media   interfaces.IMediaGateway
}

var _ IAttachmentUseCase = (*AttachmentUseCase)(nil)

func NewAttachmentUseCase(repo interfaces.IAttachmentRepository, orders interfaces.IServiceOrderRepository, columns interfaces.IKanbanColumnRepository, media interfaces.IMediaGateway) *AttachmentUseCase {
	return &AttachmentUseCase{repo: repo, orders: orders, columns: columns, media: media}
}

// Upload stores the bytes first and then the record. If the record cannot be
// written the stored object is removed again.
func (u *AttachmentUseCase) Upload(ctx context.Context, in UploadInput) (entities.Attachment, error) {
	if !in.MediaType.Valid() {
		return entities.Attachment{}, ErrInvalidMediaType
	}
	if in.Body == nil || in.Size == 0 {
		return entities.Attachment{}, ErrEmptyUpload
	}
	orderID, step, err := u.checkOwner(ctx, in.OrderID, in.Step)
	if err != nil {
		return entities.Attachment{}, err
	}
	if strings.TrimSpace(in.Folder) == "" {
		in.Folder = folderFor(orderID)
	}

	stored, err := u.media.Upload(ctx, in.MediaUpload)
	if err != nil {
		return entities.Attachment{}, err
	}

	a := entities.Attachment{
		ID:             uuid.NewString(),
		ServiceOrderID: orderID,
		URL:            stored.URL,
		Step:           step,
		MediaType:      in.MediaType,
		Caption:        strings.TrimSpace(in.Caption),
		StoragePath:    stored.Path,
		Provider:       stored.Provider,
		CreatedAt:      time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, a)
	if err != nil {
		if delErr := u.media.Delete(ctx, stored.Path, stored.Provider); delErr != nil {
			log.Error().Err(delErr).Str("path", stored.Path).Msg("[attachment][usecase] failed removing orphan object")
		}
		return entities.Attachment{}, err
	}
	log.Info().Str("attachment_id", created.ID).Str("order_id", orderID).Str("path", created.StoragePath).Msg("[attachment][usecase] uploaded")
	return created, nil
}

// AddLink records an external video. Nothing is uploaded.
func (u *AttachmentUseCase) AddLink(ctx context.Context, in LinkInput) (entities.Attachment, error) {
	orderID, step, err := u.checkOwner(ctx, in.OrderID, in.Step)
	if err != nil {
		return entities.Attachment{}, err
	}
	stored, err := u.media.ProcessExternalLink(ctx, in.URL, entities.StorageProviderYouTube)
	if err != nil {
		return entities.Attachment{}, err
	}
	a := entities.Attachment{
		ID:             uuid.NewString(),
		ServiceOrderID: orderID,
		URL:            stored.URL,
		Step:           step,
		MediaType:      entities.MediaTypeVideo,
		Caption:        strings.TrimSpace(in.Caption),
		StoragePath:    stored.Path,
		Provider:       stored.Provider,
		CreatedAt:      time.Now().UTC(),
	}
	return u.repo.Create(ctx, a)
}

func (u *AttachmentUseCase) LinkToOrder(ctx context.Context, id, orderID string) (entities.Attachment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Attachment{}, ErrInvalidAttachmentID
	}
	linked, err := u.repo.LinkToOrder(ctx, id, strings.TrimSpace(orderID))
	if errors.Is(err, interfaces.ErrAttachmentAlreadyLinked) {
		return entities.Attachment{}, ErrAttachmentLinked
	}
	if err != nil {
		return entities.Attachment{}, err
	}
	if linked.ID == "" {
		return entities.Attachment{}, ErrAttachmentNotFound
	}
	return linked, nil
}

// Delete removes the record and then, for uploaded files, the stored object.
// A failed object delete leaves an orphan object, which is only logged.
func (u *AttachmentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAttachmentID
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.ID == "" {
		return ErrAttachmentNotFound
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAttachmentNotFound
	}
	if err := u.media.Delete(ctx, a.StoragePath, a.Provider); err != nil {
		log.Error().Err(err).Str("attachment_id", id).Str("path", a.StoragePath).Msg("[attachment][usecase] failed removing stored object")
	}
	return nil
}

// checkOwner validates the optional order and the capture step. A draft
// upload has no order and defaults its step to the first column.
func (u *AttachmentUseCase) checkOwner(ctx context.Context, orderID, step string) (string, string, error) {
	orderID = strings.TrimSpace(orderID)
	step = strings.TrimSpace(step)

	if orderID != "" {
		o, err := u.orders.GetByID(ctx, orderID)
		if err != nil {
			return "", "", err
		}
		if o.ID == "" {
			return "", "", ErrOrderNotFound
		}
		if step == "" {
			step = o.CurrentStatus
		}
	}

	cols, err := u.columns.List(ctx)
	if err != nil {
		return "", "", err
	}
	if step == "" {
		first, ok := workflow.FirstStage(cols)
		if !ok {
			return "", "", ErrNoColumns
		}
		return orderID, first.Slug, nil
	}
	if workflow.HasStage(cols, step) {
		return orderID, step, nil
	}
	return "", "", ErrInvalidStep
}

func folderFor(orderID string) string {
	if orderID == "" {
		return "drafts"
	}
	return "orders/" + orderID
}
