package handlers

import (
	"errors"
	"net/http"
	request "oficina_os/internal/adapter/http/dto/request"
	response "oficina_os/internal/adapter/http/dto/response"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"

	"github.com/gin-gonic/gin"
)

// BudgetHandler handles HTTP requests for budgets (orçamentos) and their items.
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// GetByOrder godoc
// @Summary      Budget of a service order
// @Tags         budgets
// @Produce      json
// @Param        id   path      string  true  "Service order ID"
// @Success      200  {object}  response.BudgetResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/budget [get]
func (h *BudgetHandler) GetByOrder(c *gin.Context) {
	b, err := h.usecase.GetByOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

func (h *BudgetHandler) Create(c *gin.Context) {
	var payload request.BudgetCreateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}

	b, err := h.usecase.Create(c.Request.Context(), c.Param("id"), payload.LaborCost.Float64())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(b))
}

// AddItem godoc
// @Summary      Add a budget item
// @Description  Only while the budget is pending. price accepts a number or a numeric string.
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Budget ID"
// @Param        item  body      request.BudgetItemRequest  true  "Item"
// @Success      201   {object}  response.BudgetResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /budgets/{id}/items [post]
func (h *BudgetHandler) AddItem(c *gin.Context) {
	var payload request.BudgetItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	b, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(b))
}

func (h *BudgetHandler) RemoveItem(c *gin.Context) {
	b, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

func (h *BudgetHandler) UpdateLabor(c *gin.Context) {
	var payload request.LaborRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	b, err := h.usecase.UpdateLabor(c.Request.Context(), c.Param("id"), payload.LaborCost.Float64())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

func (h *BudgetHandler) Approve(c *gin.Context) {
	b, err := h.usecase.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

func (h *BudgetHandler) Reject(c *gin.Context) {
	b, err := h.usecase.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID), errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidAmount), errors.Is(err, usecase.ErrInvalidBudgetItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetItemNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_ITEM_NOT_FOUND", "Budget item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Part not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetAlreadyExists):
		return pkg.NewDomainErrorSimple("BUDGET_ALREADY_EXISTS", "Budget already exists for this service order", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetNotPending):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_PENDING", "Budget is no longer pending", http.StatusConflict)
	default:
		return internalError(err)
	}
}
