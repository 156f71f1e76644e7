package repository

import (
	"context"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type customerItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	WhatsApp  string `dynamodbav:"whatsapp"`
	TaxID     string `dynamodbav:"tax_id,omitempty"`
	Address   string `dynamodbav:"address,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type CustomerDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb DynamoAPI, tableName string) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	if err := putNew(ctx, r.ddb, r.tableName, "id", toCustomerItem(c)); err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	it, found, err := getByKey[customerItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.Customer, error) {
	items, err := scanAll[customerItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Customer, 0, len(items))
	for _, it := range items {
		out = append(out, fromCustomerItem(it))
	}
	return out, nil
}

func (r *CustomerDynamoRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	it, found, err := update[customerItem](ctx, r.ddb, updateSpec{
		table:    r.tableName,
		keyName:  "id",
		keyValue: c.ID,
		expr:     "SET #name = :name, #whatsapp = :whatsapp, #tax_id = :tax_id, #address = :address, #updated_at = :updated_at",
		names: map[string]string{
			"#name":       "name",
			"#whatsapp":   "whatsapp",
			"#tax_id":     "tax_id",
			"#address":    "address",
			"#updated_at": "updated_at",
		},
		values: map[string]types.AttributeValue{
			":name":       &types.AttributeValueMemberS{Value: c.Name},
			":whatsapp":   &types.AttributeValueMemberS{Value: c.WhatsApp},
			":tax_id":     &types.AttributeValueMemberS{Value: c.TaxID},
			":address":    &types.AttributeValueMemberS{Value: c.Address},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(c.UpdatedAt)},
		},
	})
	if err != nil || !found {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByKey(ctx, r.ddb, r.tableName, "id", id)
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:        c.ID,
		Name:      c.Name,
		WhatsApp:  c.WhatsApp,
		TaxID:     c.TaxID,
		Address:   c.Address,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		ID:        it.ID,
		Name:      it.Name,
		WhatsApp:  it.WhatsApp,
		TaxID:     it.TaxID,
		Address:   it.Address,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
