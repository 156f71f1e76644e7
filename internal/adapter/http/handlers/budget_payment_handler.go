package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	request "oficina_os/internal/adapter/http/dto/request"
	response "oficina_os/internal/adapter/http/dto/response"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BudgetPaymentHandler handles HTTP requests for budget payments.
type BudgetPaymentHandler struct {
	usecase usecase.IBudgetPaymentUseCase
}

func NewBudgetPaymentHandler(uc usecase.IBudgetPaymentUseCase) *BudgetPaymentHandler {
	return &BudgetPaymentHandler{usecase: uc}
}

// Charge godoc
// @Summary      Charge an approved budget
// @Description  Forwards the Mercado Pago payload with transaction_amount replaced by the budget total.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      string                              true  "Budget ID"
// @Param        body  body      request.BudgetPaymentCreateRequest  true  "Mercado Pago payload"
// @Success      200   {object}  response.BudgetPaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /budgets/{id}/payments [post]
func (h *BudgetPaymentHandler) Charge(c *gin.Context) {
	budgetID := c.Param("id")
	log.Info().Str("budget_id", budgetID).Msg("[payment][handler] charge start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		// The use case decides: refused unless the gateway runs in mock mode.
		log.Warn().Err(err).Str("budget_id", budgetID).Msg("[payment][handler] unreadable payload")
		mpPayload = nil
	}

	created, err := h.usecase.Charge(c.Request.Context(), budgetID, mpPayload)
	if err != nil {
		log.Error().Err(err).Str("budget_id", budgetID).Msg("[payment][handler] charge failed")
		appErr := mapBudgetPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info().Str("budget_id", budgetID).Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("[payment][handler] charge success")

	c.JSON(http.StatusOK, response.FromBudgetPayment(created))
}

// List returns every payment of a budget, newest first.
func (h *BudgetPaymentHandler) List(c *gin.Context) {
	budgetID := c.Param("id")

	payments, err := h.usecase.ListByBudgetID(c.Request.Context(), budgetID)
	if err != nil {
		appErr := mapBudgetPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := response.FromBudgetPayments(payments)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PaymentDate.After(out[j].PaymentDate)
	})
	c.JSON(http.StatusOK, out)
}

// readMPPayload accepts either {"mp_payload": {...}} or the bare payload.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if _, ok := envelope["mp_payload"]; ok {
			var wrapped request.BudgetPaymentCreateRequest
			if err := json.Unmarshal(raw, &wrapped); err != nil {
				return nil, err
			}
			trimmed := strings.TrimSpace(string(wrapped.MPPayload))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped.MPPayload, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBudgetPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentBudgetID), errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotApproved):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_APPROVED", "Budget not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
