package response

import (
	"encoding/json"
	"testing"
	"time"

	"oficina_os/internal/domain/entities"
)

func TestFromBudgetPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.BudgetPayment{
		ID:           "pay-1",
		BudgetID:     "os-1",
		Amount:       65.5,
		Date:         now,
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: raw,
		MPPayload:    payload,
	}

	res := FromBudgetPayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.BudgetID != "os-1" || res.Status != "approved" || res.Amount != 65.5 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}
}

func TestFromBudget(t *testing.T) {
	b := entities.Budget{
		ID:             "os-1",
		ServiceOrderID: "os-1",
		Status:         entities.BudgetStatusPending,
		LaborCost:      40,
		Items: []entities.BudgetItem{
			{ID: "i-1", Description: "Filtro de ar", Price: 25.5},
		},
	}

	res := FromBudget(b)
	if res.ItemsTotal != 25.5 || res.Total != 65.5 || res.Status != "pending" {
		t.Fatalf("unexpected totals: %+v", res)
	}

	empty := FromBudget(entities.Budget{ID: "os-2", LaborCost: 12})
	if empty.Items == nil || len(empty.Items) != 0 || empty.Total != 12 {
		t.Fatalf("unexpected empty budget: %+v", empty)
	}
}
