package database

import (
	"context"
	"errors"
	"oficina_os/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

// TableCreator is the part of the DynamoDB client needed to provision tables.
type TableCreator interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// TableSpec describes one table: its hash key and optional single-key GSIs.
type TableSpec struct {
	Name    string
	Key     string
	Indexes map[string]string
}

// Specs lists every table the service uses with its index layout.
func Specs(t config.Tables) []TableSpec {
	byOrder := map[string]string{"service_order_id-index": "service_order_id"}
	byBudget := map[string]string{"budget_id-index": "budget_id"}
	return []TableSpec{
		{Name: t.Customers, Key: "id"},
		{Name: t.Technicians, Key: "id"},
		{Name: t.Parts, Key: "id"},
		{Name: t.KanbanColumns, Key: "slug"},
		{Name: t.ServiceOrders, Key: "id", Indexes: map[string]string{"current_status-index": "current_status"}},
		{Name: t.StageTransitions, Key: "id", Indexes: byOrder},
		{Name: t.Attachments, Key: "id", Indexes: byOrder},
		{Name: t.Budgets, Key: "id"},
		{Name: t.BudgetItems, Key: "id", Indexes: byBudget},
		{Name: t.BudgetPayments, Key: "id", Indexes: byBudget},
		{Name: t.Counters, Key: "name"},
	}
}

// CreateTableInput builds the on-demand CreateTable request for spec.
func (s TableSpec) CreateTableInput() *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{{AttributeName: aws.String(s.Key), AttributeType: types.ScalarAttributeTypeS}}
	var gsis []types.GlobalSecondaryIndex
	for name, attr := range s.Indexes {
		attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(attr), AttributeType: types.ScalarAttributeTypeS})
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(name),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(attr), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}
	return &dynamodb.CreateTableInput{
		TableName:              aws.String(s.Name),
		AttributeDefinitions:   attrs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String(s.Key), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
		BillingMode:            types.BillingModePayPerRequest,
	}
}

// CreateTables creates every missing table. Tables that already exist are
// skipped. It returns the names it created.
func CreateTables(ctx context.Context, ddb TableCreator, specs []TableSpec) ([]string, error) {
	created := make([]string, 0, len(specs))
	for _, s := range specs {
		_, err := ddb.CreateTable(ctx, s.CreateTableInput())
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			log.Debug().Str("table", s.Name).Msg("[tables][database] already exists")
			continue
		}
		if err != nil {
			return created, err
		}
		log.Info().Str("table", s.Name).Int("indexes", len(s.Indexes)).Msg("[tables][database] created")
		created = append(created, s.Name)
	}
	return created, nil
}
