package repository

import (
	"context"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type partItem struct {
	ID           string  `dynamodbav:"id"`
	Code         string  `dynamodbav:"code"`
	Description  string  `dynamodbav:"description"`
	Brand        string  `dynamodbav:"brand"`
	DefaultPrice float64 `dynamodbav:"default_price"`
	CreatedAt    string  `dynamodbav:"created_at"`
	UpdatedAt    string  `dynamodbav:"updated_at"`
}

// PartDynamoRepository persists catalog parts.
//
// Table requirements:
//   - PK: id (string)
type PartDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPartRepository = (*PartDynamoRepository)(nil)

func NewPartDynamoRepository(ddb DynamoAPI, tableName string) *PartDynamoRepository {
	return &PartDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PartDynamoRepository) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	if err := putNew(ctx, r.ddb, r.tableName, "id", toPartItem(p)); err != nil {
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Part, error) {
	it, found, err := getByKey[partItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.Part{}, err
	}
	return fromPartItem(it), nil
}

func (r *PartDynamoRepository) List(ctx context.Context) ([]entities.Part, error) {
	items, err := scanAll[partItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Part, 0, len(items))
	for _, it := range items {
		out = append(out, fromPartItem(it))
	}
	return out, nil
}

func (r *PartDynamoRepository) Update(ctx context.Context, p entities.Part) (entities.Part, error) {
	it, found, err := update[partItem](ctx, r.ddb, updateSpec{
		table:    r.tableName,
		keyName:  "id",
		keyValue: p.ID,
		expr:     "SET #code = :code, #description = :description, #brand = :brand, #default_price = :default_price, #updated_at = :updated_at",
		names: map[string]string{
			"#code":          "code",
			"#description":   "description",
			"#brand":         "brand",
			"#default_price": "default_price",
			"#updated_at":    "updated_at",
		},
		values: map[string]types.AttributeValue{
			":code":          &types.AttributeValueMemberS{Value: p.Code},
			":description":   &types.AttributeValueMemberS{Value: p.Description},
			":brand":         &types.AttributeValueMemberS{Value: p.Brand},
			":default_price": &types.AttributeValueMemberN{Value: floatToString(p.DefaultPrice)},
			":updated_at":    &types.AttributeValueMemberS{Value: formatTime(p.UpdatedAt)},
		},
	})
	if err != nil || !found {
		return entities.Part{}, err
	}
	return fromPartItem(it), nil
}

func (r *PartDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByKey(ctx, r.ddb, r.tableName, "id", id)
}

func toPartItem(p entities.Part) partItem {
	return partItem{
		ID:           p.ID,
		Code:         p.Code,
		Description:  p.Description,
		Brand:        p.Brand,
		DefaultPrice: p.DefaultPrice,
		CreatedAt:    formatTime(p.CreatedAt),
		UpdatedAt:    formatTime(p.UpdatedAt),
	}
}

func fromPartItem(it partItem) entities.Part {
	return entities.Part{
		ID:           it.ID,
		Code:         it.Code,
		Description:  it.Description,
		Brand:        it.Brand,
		DefaultPrice: it.DefaultPrice,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
