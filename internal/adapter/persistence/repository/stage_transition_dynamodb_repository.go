package repository

import (
	"context"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

// OrderIDIndex is the GSI on service_order_id shared by the transition and
// attachment tables.
const OrderIDIndex = "service_order_id-index"

type stageTransitionItem struct {
	ID             string `dynamodbav:"id"`
	ServiceOrderID string `dynamodbav:"service_order_id"`
	FromSlug       string `dynamodbav:"from_slug,omitempty"`
	ToSlug         string `dynamodbav:"to_slug"`
	Note           string `dynamodbav:"note,omitempty"`
	Kind           string `dynamodbav:"kind"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// StageTransitionDynamoRepository stores the append-only status history.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_order_id-index (PK: service_order_id)
type StageTransitionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IStageTransitionRepository = (*StageTransitionDynamoRepository)(nil)

func NewStageTransitionDynamoRepository(ddb DynamoAPI, tableName string) *StageTransitionDynamoRepository {
	return &StageTransitionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *StageTransitionDynamoRepository) Create(ctx context.Context, t entities.StageTransition) (entities.StageTransition, error) {
	it := stageTransitionItem{
		ID:             t.ID,
		ServiceOrderID: t.ServiceOrderID,
		FromSlug:       t.FromSlug,
		ToSlug:         t.ToSlug,
		Note:           t.Note,
		Kind:           string(t.Kind),
		CreatedAt:      formatTime(t.CreatedAt),
	}
	if err := putNew(ctx, r.ddb, r.tableName, "id", it); err != nil {
		return entities.StageTransition{}, err
	}
	return t, nil
}

func (r *StageTransitionDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.StageTransition, error) {
	items, err := queryIndex[stageTransitionItem](ctx, r.ddb, r.tableName, OrderIDIndex, "service_order_id", orderID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.StageTransition, 0, len(items))
	for _, it := range items {
		out = append(out, entities.StageTransition{
			ID:             it.ID,
			ServiceOrderID: it.ServiceOrderID,
			FromSlug:       it.FromSlug,
			ToSlug:         it.ToSlug,
			Note:           it.Note,
			Kind:           entities.TransitionKind(it.Kind),
			CreatedAt:      parseTime(it.CreatedAt),
		})
	}
	return out, nil
}
