package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome reported by the provider.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// BudgetPayment is a charge of an approved budget.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (budget_id-index): budget_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the provider response (JSON) for traceability.
//   - MPPayload is the parsed representation of the same response.
type BudgetPayment struct {
	ID       string        `json:"id"`
	BudgetID string        `json:"budget_id"`
	Amount   float64       `json:"amount"`
	Date     time.Time     `json:"date"`
	Status   PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

// PaymentStatusFromProvider maps a Mercado Pago status string.
func PaymentStatusFromProvider(s string) PaymentStatus {
	switch s {
	case "approved", "authorized":
		return PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusDenied
	default:
		return PaymentStatusPending
	}
}
