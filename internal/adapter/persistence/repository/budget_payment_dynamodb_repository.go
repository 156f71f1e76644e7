package repository

import (
	"context"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

type budgetPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	BudgetID     string                 `dynamodbav:"budget_id"`
	Amount       float64                `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// BudgetPaymentDynamoRepository persists BudgetPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id)
type BudgetPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBudgetPaymentRepository = (*BudgetPaymentDynamoRepository)(nil)

func NewBudgetPaymentDynamoRepository(ddb DynamoAPI, tableName string) *BudgetPaymentDynamoRepository {
	return &BudgetPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BudgetPaymentDynamoRepository) Create(ctx context.Context, p entities.BudgetPayment) (entities.BudgetPayment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, "id", toBudgetPaymentItem(p)); err != nil {
		return entities.BudgetPayment{}, err
	}
	return p, nil
}

func (r *BudgetPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BudgetPayment, error) {
	it, found, err := getByKey[budgetPaymentItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.BudgetPayment{}, err
	}
	return fromBudgetPaymentItem(it), nil
}

func (r *BudgetPaymentDynamoRepository) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BudgetPayment, error) {
	items, err := queryIndex[budgetPaymentItem](ctx, r.ddb, r.tableName, BudgetIDIndex, "budget_id", budgetID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.BudgetPayment, 0, len(items))
	for _, it := range items {
		out = append(out, fromBudgetPaymentItem(it))
	}
	return out, nil
}

func toBudgetPaymentItem(p entities.BudgetPayment) budgetPaymentItem {
	return budgetPaymentItem{
		ID:           p.ID,
		BudgetID:     p.BudgetID,
		Amount:       p.Amount,
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromBudgetPaymentItem(it budgetPaymentItem) entities.BudgetPayment {
	return entities.BudgetPayment{
		ID:           it.ID,
		BudgetID:     it.BudgetID,
		Amount:       it.Amount,
		Date:         parseTime(it.Date),
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
