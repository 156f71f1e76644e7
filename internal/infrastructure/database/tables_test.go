package database

import (
	"context"
	"testing"

	"oficina_os/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreator struct {
	existing map[string]bool
	names    []string
}

func (f *fakeCreator) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	name := aws.ToString(in.TableName)
	f.names = append(f.names, name)
	if f.existing[name] {
		return nil, &types.ResourceInUseException{Message: aws.String("Table already exists: " + name)}
	}
	return &dynamodb.CreateTableOutput{}, nil
}

func TestSpecs_CoversEveryTable(t *testing.T) {
	specs := Specs(config.Tables{
		Customers:        "customers",
		Technicians:      "technicians",
		Parts:            "parts",
		KanbanColumns:    "kanban_columns",
		ServiceOrders:    "service_orders",
		StageTransitions: "stage_transitions",
		Attachments:      "attachments",
		Budgets:          "budgets",
		BudgetItems:      "budget_items",
		BudgetPayments:   "budget_payments",
		Counters:         "counters",
	})
	assert.Len(t, specs, 11)

	byName := map[string]TableSpec{}
	for _, s := range specs {
		byName[s.Name] = s
	}
	assert.Equal(t, "slug", byName["kanban_columns"].Key)
	assert.Equal(t, "current_status", byName["service_orders"].Indexes["current_status-index"])
	assert.Equal(t, "budget_id", byName["budget_items"].Indexes["budget_id-index"])
}

func TestCreateTableInput_DeclaresIndexAttributes(t *testing.T) {
	in := TableSpec{Name: "attachments", Key: "id", Indexes: map[string]string{"service_order_id-index": "service_order_id"}}.CreateTableInput()

	require.Len(t, in.AttributeDefinitions, 2)
	require.Len(t, in.GlobalSecondaryIndexes, 1)
	assert.Equal(t, "service_order_id-index", aws.ToString(in.GlobalSecondaryIndexes[0].IndexName))
	assert.Equal(t, types.BillingModePayPerRequest, in.BillingMode)
}

func TestCreateTables_SkipsExisting(t *testing.T) {
	f := &fakeCreator{existing: map[string]bool{"customers": true}}
	specs := []TableSpec{{Name: "customers", Key: "id"}, {Name: "parts", Key: "id"}}

	created, err := CreateTables(context.Background(), f, specs)

	require.NoError(t, err)
	assert.Equal(t, []string{"parts"}, created)
	assert.Equal(t, []string{"customers", "parts"}, f.names)
}
