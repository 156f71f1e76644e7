package repository

import (
	"context"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type kanbanColumnItem struct {
	Slug      string `dynamodbav:"slug"`
	Title     string `dynamodbav:"title"`
	Position  int    `dynamodbav:"position"`
	CreatedAt string `dynamodbav:"created_at"`
}

// KanbanColumnDynamoRepository persists workflow columns.
//
// Table requirements:
//   - PK: slug (string); the conditional put makes slugs unique
type KanbanColumnDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IKanbanColumnRepository = (*KanbanColumnDynamoRepository)(nil)

func NewKanbanColumnDynamoRepository(ddb DynamoAPI, tableName string) *KanbanColumnDynamoRepository {
	return &KanbanColumnDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *KanbanColumnDynamoRepository) Create(ctx context.Context, c entities.KanbanColumn) (entities.KanbanColumn, error) {
	it := kanbanColumnItem{Slug: c.Slug, Title: c.Title, Position: c.Position, CreatedAt: formatTime(c.CreatedAt)}
	if err := putNew(ctx, r.ddb, r.tableName, "slug", it); err != nil {
		return entities.KanbanColumn{}, err
	}
	return c, nil
}

func (r *KanbanColumnDynamoRepository) Get(ctx context.Context, slug string) (entities.KanbanColumn, error) {
	it, found, err := getByKey[kanbanColumnItem](ctx, r.ddb, r.tableName, "slug", slug)
	if err != nil || !found {
		return entities.KanbanColumn{}, err
	}
	return fromKanbanColumnItem(it), nil
}

func (r *KanbanColumnDynamoRepository) List(ctx context.Context) ([]entities.KanbanColumn, error) {
	items, err := scanAll[kanbanColumnItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.KanbanColumn, 0, len(items))
	for _, it := range items {
		out = append(out, fromKanbanColumnItem(it))
	}
	return out, nil
}

func (r *KanbanColumnDynamoRepository) UpdateTitle(ctx context.Context, slug, title string) (entities.KanbanColumn, error) {
	return r.set(ctx, slug, "#title", "title", &types.AttributeValueMemberS{Value: title})
}

func (r *KanbanColumnDynamoRepository) UpdatePosition(ctx context.Context, slug string, position int) (entities.KanbanColumn, error) {
	return r.set(ctx, slug, "#position", "position", &types.AttributeValueMemberN{Value: strconv.Itoa(position)})
}

func (r *KanbanColumnDynamoRepository) Delete(ctx context.Context, slug string) (bool, error) {
	return deleteByKey(ctx, r.ddb, r.tableName, "slug", slug)
}

func (r *KanbanColumnDynamoRepository) set(ctx context.Context, slug, placeholder, attr string, value types.AttributeValue) (entities.KanbanColumn, error) {
	it, found, err := update[kanbanColumnItem](ctx, r.ddb, updateSpec{
		table:    r.tableName,
		keyName:  "slug",
		keyValue: slug,
		expr:     "SET " + placeholder + " = :v",
		names:    map[string]string{placeholder: attr},
		values:   map[string]types.AttributeValue{":v": value},
	})
	if err != nil || !found {
		return entities.KanbanColumn{}, err
	}
	return fromKanbanColumnItem(it), nil
}

func fromKanbanColumnItem(it kanbanColumnItem) entities.KanbanColumn {
	return entities.KanbanColumn{
		Slug:      it.Slug,
		Title:     it.Title,
		Position:  it.Position,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
