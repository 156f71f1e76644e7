package repository

import (
	"context"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type attachmentItem struct {
	ID             string `dynamodbav:"id"`
	ServiceOrderID string `dynamodbav:"service_order_id,omitempty"`
	URL            string `dynamodbav:"url"`
	Step           string `dynamodbav:"step"`
	MediaType      string `dynamodbav:"media_type"`
	Caption        string `dynamodbav:"caption,omitempty"`
	StoragePath    string `dynamodbav:"storage_path,omitempty"`
	Provider       string `dynamodbav:"provider"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// AttachmentDynamoRepository persists attachment records. Draft attachments
// have no service_order_id and stay out of the index until linked.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_order_id-index (PK: service_order_id)
type AttachmentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAttachmentRepository = (*AttachmentDynamoRepository)(nil)

func NewAttachmentDynamoRepository(ddb DynamoAPI, tableName string) *AttachmentDynamoRepository {
	return &AttachmentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AttachmentDynamoRepository) Create(ctx context.Context, a entities.Attachment) (entities.Attachment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, "id", toAttachmentItem(a)); err != nil {
		return entities.Attachment{}, err
	}
	return a, nil
}

func (r *AttachmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Attachment, error) {
	it, found, err := getByKey[attachmentItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.Attachment{}, err
	}
	return fromAttachmentItem(it), nil
}

func (r *AttachmentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Attachment, error) {
	items, err := queryIndex[attachmentItem](ctx, r.ddb, r.tableName, OrderIDIndex, "service_order_id", orderID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Attachment, 0, len(items))
	for _, it := range items {
		out = append(out, fromAttachmentItem(it))
	}
	return out, nil
}

func (r *AttachmentDynamoRepository) LinkToOrder(ctx context.Context, id, orderID string) (entities.Attachment, error) {
	it, found, err := update[attachmentItem](ctx, r.ddb, updateSpec{
		table:     r.tableName,
		keyName:   "id",
		keyValue:  id,
		expr:      "SET #service_order_id = :service_order_id",
		condition: "(attribute_not_exists(#service_order_id) OR #service_order_id = :service_order_id)",
		names:     map[string]string{"#service_order_id": "service_order_id"},
		values: map[string]types.AttributeValue{
			":service_order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return entities.Attachment{}, err
	}
	if found {
		return fromAttachmentItem(it), nil
	}

	// The guard failed: either the key is missing or another order owns it.
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Attachment{}, err
	}
	if current.ID != "" {
		return entities.Attachment{}, interfaces.ErrAttachmentAlreadyLinked
	}
	return entities.Attachment{}, nil
}

func (r *AttachmentDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByKey(ctx, r.ddb, r.tableName, "id", id)
}

func toAttachmentItem(a entities.Attachment) attachmentItem {
	return attachmentItem{
		ID:             a.ID,
		ServiceOrderID: a.ServiceOrderID,
		URL:            a.URL,
		Step:           a.Step,
		MediaType:      string(a.MediaType),
		Caption:        a.Caption,
		StoragePath:    a.StoragePath,
		Provider:       string(a.Provider),
		CreatedAt:      formatTime(a.CreatedAt),
	}
}

func fromAttachmentItem(it attachmentItem) entities.Attachment {
	return entities.Attachment{
		ID:             it.ID,
		ServiceOrderID: it.ServiceOrderID,
		URL:            it.URL,
		Step:           it.Step,
		MediaType:      entities.MediaType(it.MediaType),
		Caption:        it.Caption,
		StoragePath:    it.StoragePath,
		Provider:       entities.StorageProvider(it.Provider),
		CreatedAt:      parseTime(it.CreatedAt),
	}
}
