package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	request "oficina_os/internal/adapter/http/dto/request"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ServiceOrderHandler handles HTTP requests for service orders (OS).
type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// List godoc
// @Summary      List service orders
// @Description  Newest first, with customer and technician names joined.
// @Tags         orders
// @Produce      json
// @Param        status  query     string  false  "Kanban column slug"
// @Param        q       query     string  false  "Free-text filter"
// @Success      200     {array}   entities.ServiceOrderSummary
// @Router       /orders [get]
func (h *ServiceOrderHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), usecase.OrderFilter{
		Status: c.Query("status"),
		Query:  c.Query("q"),
	})
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ServiceOrderHandler) Get(c *gin.Context) {
	detail, err := h.usecase.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *ServiceOrderHandler) Update(c *gin.Context) {
	var payload request.OrderPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateDetails(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Advance godoc
// @Summary      Advance a service order
// @Description  Moves the order to the next kanban column. At the last column nothing changes and advanced is false.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true   "Service order ID"
// @Param        body  body      request.AdvanceRequest  false  "Transition note"
// @Success      200   {object}  usecase.AdvanceResult
// @Failure      409   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /orders/{id}/advance [post]
func (h *ServiceOrderHandler) Advance(c *gin.Context) {
	var payload request.AdvanceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}

	res, err := h.usecase.Advance(c.Request.Context(), c.Param("id"), payload.Note)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ServiceOrderHandler) Move(c *gin.Context) {
	var payload request.MoveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	updated, err := h.usecase.Move(c.Request.Context(), c.Param("id"), payload.Status, payload.Note)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ServiceOrderHandler) Transitions(c *gin.Context) {
	items, err := h.usecase.Transitions(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, items)
}

// Export writes every order as a spreadsheet download.
func (h *ServiceOrderHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.usecase.Export(c.Request.Context(), &buf); err != nil {
		log.Error().Err(err).Msg("[order][handler] export failed")
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filename := fmt.Sprintf("ordens-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, h.usecase.ExportContentType(), buf.Bytes())
}

func mapServiceOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrder):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownStatus):
		return pkg.NewDomainErrorSimple("UNKNOWN_STATUS", "Status does not match any kanban column", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNoColumns):
		return pkg.NewDomainErrorSimple("NO_COLUMNS", "No kanban columns configured", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderStatusConflict):
		return pkg.NewDomainErrorSimple("ORDER_STATUS_CONFLICT", "Service order status changed concurrently", http.StatusConflict)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTechnicianNotFound), errors.Is(err, usecase.ErrTechnicianInactive):
		return mapTechnicianError(err)
	default:
		return internalError(err)
	}
}
