package repository

import (
	"context"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type technicianItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Active    bool   `dynamodbav:"active"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// TechnicianDynamoRepository persists Technician entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type TechnicianDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITechnicianRepository = (*TechnicianDynamoRepository)(nil)

func NewTechnicianDynamoRepository(ddb DynamoAPI, tableName string) *TechnicianDynamoRepository {
	return &TechnicianDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TechnicianDynamoRepository) Create(ctx context.Context, t entities.Technician) (entities.Technician, error) {
	if err := putNew(ctx, r.ddb, r.tableName, "id", toTechnicianItem(t)); err != nil {
		return entities.Technician{}, err
	}
	return t, nil
}

func (r *TechnicianDynamoRepository) GetByID(ctx context.Context, id string) (entities.Technician, error) {
	it, found, err := getByKey[technicianItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.Technician{}, err
	}
	return fromTechnicianItem(it), nil
}

func (r *TechnicianDynamoRepository) List(ctx context.Context) ([]entities.Technician, error) {
	items, err := scanAll[technicianItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Technician, 0, len(items))
	for _, it := range items {
		out = append(out, fromTechnicianItem(it))
	}
	return out, nil
}

func (r *TechnicianDynamoRepository) Update(ctx context.Context, t entities.Technician) (entities.Technician, error) {
	return r.update(ctx, t.ID, "SET #name = :name, #updated_at = :updated_at",
		map[string]string{"#name": "name"},
		map[string]types.AttributeValue{":name": &types.AttributeValueMemberS{Value: t.Name}},
		t.UpdatedAt,
	)
}

func (r *TechnicianDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.Technician, error) {
	return r.update(ctx, id, "SET #active = :active, #updated_at = :updated_at",
		map[string]string{"#active": "active"},
		map[string]types.AttributeValue{":active": &types.AttributeValueMemberBOOL{Value: active}},
		nowUTC(),
	)
}

func (r *TechnicianDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByKey(ctx, r.ddb, r.tableName, "id", id)
}

func (r *TechnicianDynamoRepository) update(ctx context.Context, id, expr string, names map[string]string, values map[string]types.AttributeValue, now time.Time) (entities.Technician, error) {
	names["#updated_at"] = "updated_at"
	values[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(now)}
	it, found, err := update[technicianItem](ctx, r.ddb, updateSpec{
		table:    r.tableName,
		keyName:  "id",
		keyValue: id,
		expr:     expr,
		names:    names,
		values:   values,
	})
	if err != nil || !found {
		return entities.Technician{}, err
	}
	return fromTechnicianItem(it), nil
}

func toTechnicianItem(t entities.Technician) technicianItem {
	return technicianItem{
		ID:        t.ID,
		Name:      t.Name,
		Active:    t.Active,
		CreatedAt: formatTime(t.CreatedAt),
		UpdatedAt: formatTime(t.UpdatedAt),
	}
}

func fromTechnicianItem(it technicianItem) entities.Technician {
	return entities.Technician{
		ID:        it.ID,
		Name:      it.Name,
		Active:    it.Active,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
