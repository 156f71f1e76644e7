package request

import "encoding/json"

// BudgetPaymentCreateRequest wraps the Mercado Pago payment body.
//
// `mp_payload` is forwarded as raw JSON to support varying Mercado Pago
// schemas. A body without the envelope is taken as the payload itself.
type BudgetPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
