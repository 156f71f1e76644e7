package handlers

import (
	"errors"
	"net/http"
	request "oficina_os/internal/adapter/http/dto/request"
	"oficina_os/internal/domain/intake"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// IntakeHandler serves the three-step order intake.
type IntakeHandler struct {
	usecase usecase.IIntakeUseCase
}

func NewIntakeHandler(uc usecase.IIntakeUseCase) *IntakeHandler {
	return &IntakeHandler{usecase: uc}
}

// Equipment returns the equipment type and brand/model catalog.
func (h *IntakeHandler) Equipment(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Equipment())
}

// Validate godoc
// @Summary      Validate one intake step
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        body  body      request.ValidateStepRequest  true  "Step and draft"
// @Success      200   {object}  intake.Result
// @Failure      400   {object}  pkg.HTTPError
// @Router       /intake/validate [post]
func (h *IntakeHandler) Validate(c *gin.Context) {
	var payload request.ValidateStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	res, err := h.usecase.ValidateStep(c.Request.Context(), payload.Step, payload.Draft)
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, res)
}

// Submit godoc
// @Summary      Create a service order from a complete intake draft
// @Description  Creates the customer when new, opens the order at the first column and links draft attachments.
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        draft  body      intake.Draft  true  "Draft"
// @Success      201    {object}  usecase.IntakeResult
// @Failure      422    {object}  intake.Result
// @Router       /intake/orders [post]
func (h *IntakeHandler) Submit(c *gin.Context) {
	var draft intake.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	res, err := h.usecase.Submit(c.Request.Context(), draft)
	if err != nil {
		var verr *usecase.IntakeValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"code":    "INTAKE_INCOMPLETE",
				"message": err.Error(),
				"result":  verr.Result,
			})
			return
		}
		log.Error().Err(err).Msg("[intake][handler] submit failed")
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, res)
}

func mapIntakeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, intake.ErrInvalidStep):
		return pkg.NewDomainErrorSimple("INVALID_STEP", "Step must be 1, 2 or 3", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCustomer):
		return mapCustomerError(err)
	default:
		return mapServiceOrderError(err)
	}
}
