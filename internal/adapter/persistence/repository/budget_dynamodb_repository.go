package repository

import (
	"context"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// BudgetIDIndex is the GSI on budget_id shared by the item and payment tables.
const BudgetIDIndex = "budget_id-index"

const pendingGuard = "#status = :pending"

type budgetItem struct {
	ID             string  `dynamodbav:"id"`
	ServiceOrderID string  `dynamodbav:"service_order_id"`
	Status         string  `dynamodbav:"status"`
	LaborCost      float64 `dynamodbav:"labor_cost"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

type budgetLineItem struct {
	ID          string  `dynamodbav:"id"`
	BudgetID    string  `dynamodbav:"budget_id"`
	Description string  `dynamodbav:"description"`
	Price       float64 `dynamodbav:"price"`
	Code        string  `dynamodbav:"code,omitempty"`
	Brand       string  `dynamodbav:"brand,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
}

// BudgetDynamoRepository persists budgets and their items in two tables.
//
// Table requirements:
//   - budgets PK: id (string), equal to the service order id
//   - budget items PK: id (string)
//   - budget items GSI: budget_id-index (PK: budget_id)
//
// Item writes run in a transaction with a condition check on the budget, so
// no item changes once the budget left pending.
type BudgetDynamoRepository struct {
	ddb        DynamoAPI
	tableName  string
	itemsTable string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb DynamoAPI, tableName, itemsTable string) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{ddb: ddb, tableName: tableName, itemsTable: itemsTable}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	it := budgetItem{
		ID:             b.ID,
		ServiceOrderID: b.ServiceOrderID,
		Status:         string(b.Status),
		LaborCost:      b.LaborCost,
		CreatedAt:      formatTime(b.CreatedAt),
		UpdatedAt:      formatTime(b.UpdatedAt),
	}
	if err := putNew(ctx, r.ddb, r.tableName, "id", it); err != nil {
		return entities.Budget{}, err
	}
	if b.Items == nil {
		b.Items = []entities.BudgetItem{}
	}
	return b, nil
}

// GetByID loads the budget with its items in insertion order.
func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	it, found, err := getByKey[budgetItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.Budget{}, err
	}
	return r.withItems(ctx, it)
}

func (r *BudgetDynamoRepository) UpdateLabor(ctx context.Context, id string, labor float64) (entities.Budget, error) {
	return r.updatePending(ctx, id, "#labor_cost = :labor_cost",
		map[string]string{"#labor_cost": "labor_cost"},
		map[string]types.AttributeValue{":labor_cost": &types.AttributeValueMemberN{Value: floatToString(labor)}},
	)
}

func (r *BudgetDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	return r.updatePending(ctx, id, "#status = :new_status",
		map[string]string{},
		map[string]types.AttributeValue{":new_status": &types.AttributeValueMemberS{Value: string(status)}},
	)
}

func (r *BudgetDynamoRepository) AddItem(ctx context.Context, item entities.BudgetItem) (entities.BudgetItem, error) {
	av, err := attributevalue.MarshalMap(budgetLineItem{
		ID:          item.ID,
		BudgetID:    item.BudgetID,
		Description: item.Description,
		Price:       item.Price,
		Code:        item.Code,
		Brand:       item.Brand,
		CreatedAt:   formatTime(item.CreatedAt),
	})
	if err != nil {
		return entities.BudgetItem{}, err
	}
	err = r.transact(ctx, item.BudgetID, types.TransactWriteItem{
		Put: &types.Put{
			TableName:                aws.String(r.itemsTable),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	})
	if err != nil {
		return entities.BudgetItem{}, err
	}
	return item, nil
}

func (r *BudgetDynamoRepository) RemoveItem(ctx context.Context, budgetID, itemID string) error {
	return r.transact(ctx, budgetID, types.TransactWriteItem{
		Delete: &types.Delete{
			TableName:                aws.String(r.itemsTable),
			Key:                      stringKey("id", itemID),
			ConditionExpression:      aws.String("#budget_id = :budget_id"),
			ExpressionAttributeNames: map[string]string{"#budget_id": "budget_id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":budget_id": &types.AttributeValueMemberS{Value: budgetID},
			},
		},
	})
}

// transact runs write together with a pending check on the budget.
func (r *BudgetDynamoRepository) transact(ctx context.Context, budgetID string, write types.TransactWriteItem) error {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				ConditionCheck: &types.ConditionCheck{
					TableName:                aws.String(r.tableName),
					Key:                      stringKey("id", budgetID),
					ConditionExpression:      aws.String("attribute_exists(#pk) AND " + pendingGuard),
					ExpressionAttributeNames: map[string]string{"#pk": "id", "#status": "status"},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":pending": &types.AttributeValueMemberS{Value: string(entities.BudgetStatusPending)},
					},
				},
			},
			write,
		},
	})
	if isConditionFailed(err) {
		return interfaces.ErrConditionFailed
	}
	return err
}

func (r *BudgetDynamoRepository) updatePending(ctx context.Context, id, set string, names map[string]string, values map[string]types.AttributeValue) (entities.Budget, error) {
	names["#status"] = "status"
	names["#updated_at"] = "updated_at"
	values[":pending"] = &types.AttributeValueMemberS{Value: string(entities.BudgetStatusPending)}
	values[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(nowUTC())}

	it, found, err := update[budgetItem](ctx, r.ddb, updateSpec{
		table:     r.tableName,
		keyName:   "id",
		keyValue:  id,
		expr:      "SET " + set + ", #updated_at = :updated_at",
		condition: pendingGuard,
		names:     names,
		values:    values,
	})
	if err != nil || !found {
		return entities.Budget{}, err
	}
	return r.withItems(ctx, it)
}

func (r *BudgetDynamoRepository) withItems(ctx context.Context, it budgetItem) (entities.Budget, error) {
	lines, err := queryIndex[budgetLineItem](ctx, r.ddb, r.itemsTable, BudgetIDIndex, "budget_id", it.ID)
	if err != nil {
		return entities.Budget{}, err
	}
	items := make([]entities.BudgetItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, entities.BudgetItem{
			ID:          l.ID,
			BudgetID:    l.BudgetID,
			Description: l.Description,
			Price:       l.Price,
			Code:        l.Code,
			Brand:       l.Brand,
			CreatedAt:   parseTime(l.CreatedAt),
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })

	return entities.Budget{
		ID:             it.ID,
		ServiceOrderID: it.ServiceOrderID,
		Status:         entities.BudgetStatus(it.Status),
		LaborCost:      it.LaborCost,
		Items:          items,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}, nil
}
