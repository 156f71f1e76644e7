package handlers

import (
	"errors"
	"net/http"
	request "oficina_os/internal/adapter/http/dto/request"
	"oficina_os/internal/domain/workflow"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"

	"github.com/gin-gonic/gin"
)

// KanbanHandler serves the board and the workflow columns.
type KanbanHandler struct {
	usecase usecase.IKanbanUseCase
}

func NewKanbanHandler(uc usecase.IKanbanUseCase) *KanbanHandler {
	return &KanbanHandler{usecase: uc}
}

func (h *KanbanHandler) ListColumns(c *gin.Context) {
	cols, err := h.usecase.ListColumns(c.Request.Context())
	if err != nil {
		appErr := mapKanbanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, cols)
}

// CreateColumn godoc
// @Summary      Create a kanban column
// @Description  The slug is derived from the title and the column is appended after the last one.
// @Tags         kanban
// @Accept       json
// @Produce      json
// @Param        column  body      request.ColumnRequest  true  "Column"
// @Success      201     {object}  entities.KanbanColumn
// @Failure      409     {object}  pkg.HTTPError
// @Router       /kanban/columns [post]
func (h *KanbanHandler) CreateColumn(c *gin.Context) {
	var payload request.ColumnRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateColumn(c.Request.Context(), payload.Title)
	if err != nil {
		appErr := mapKanbanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *KanbanHandler) RenameColumn(c *gin.Context) {
	var payload request.ColumnRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	updated, err := h.usecase.RenameColumn(c.Request.Context(), c.Param("slug"), payload.Title)
	if err != nil {
		appErr := mapKanbanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *KanbanHandler) MoveColumn(c *gin.Context) {
	var payload request.ColumnPositionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	cols, err := h.usecase.MoveColumn(c.Request.Context(), c.Param("slug"), *payload.Index)
	if err != nil {
		appErr := mapKanbanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, cols)
}

func (h *KanbanHandler) DeleteColumn(c *gin.Context) {
	if err := h.usecase.DeleteColumn(c.Request.Context(), c.Param("slug")); err != nil {
		appErr := mapKanbanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// Board godoc
// @Summary      Kanban board
// @Description  Columns left to right with their orders, plus orders whose status matches no column.
// @Tags         kanban
// @Produce      json
// @Success      200  {object}  workflow.Board
// @Router       /kanban/board [get]
func (h *KanbanHandler) Board(c *gin.Context) {
	board, err := h.usecase.Board(c.Request.Context())
	if err != nil {
		appErr := mapKanbanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, board)
}

func mapKanbanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidColumnTitle), errors.Is(err, workflow.ErrEmptySlug):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrColumnNotFound):
		return pkg.NewDomainErrorSimple("COLUMN_NOT_FOUND", "Kanban column not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrColumnAlreadyExists):
		return pkg.NewDomainErrorSimple("COLUMN_ALREADY_EXISTS", "A kanban column with this slug already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrColumnInUse):
		return pkg.NewDomainErrorSimple("COLUMN_IN_USE", "Kanban column still has service orders", http.StatusConflict)
	default:
		return internalError(err)
	}
}
