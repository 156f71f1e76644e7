package handlers

import (
	"errors"
	"net/http"
	request "oficina_os/internal/adapter/http/dto/request"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"
	"oficina_os/internal/usecase/interfaces"
	"oficina_os/pkg"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var errMissingFile = pkg.NewDomainErrorSimple("INVALID_REQUEST", "file is required", http.StatusBadRequest)

// AttachmentHandler handles photo and video evidence of service orders.
type AttachmentHandler struct {
	usecase usecase.IAttachmentUseCase
}

func NewAttachmentHandler(uc usecase.IAttachmentUseCase) *AttachmentHandler {
	return &AttachmentHandler{usecase: uc}
}

// Upload godoc
// @Summary      Upload a photo or video
// @Description  Without order_id the file is kept as an intake draft attachment.
// @Tags         attachments
// @Accept       multipart/form-data
// @Produce      json
// @Param        file        formData  file    true   "File"
// @Param        media_type  formData  string  true   "photo or video"
// @Param        order_id    formData  string  false  "Service order ID"
// @Param        step        formData  string  false  "Kanban column slug"
// @Param        caption     formData  string  false  "Caption"
// @Param        folder      formData  string  false  "Storage folder"
// @Success      201  {object}  entities.Attachment
// @Failure      400  {object}  pkg.HTTPError
// @Router       /attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	var form request.UploadForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingFile.HTTPStatus, errMissingFile.ToHTTPError())
		return
	}
	f, err := fh.Open()
	if err != nil {
		appErr := internalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer f.Close()

	in := usecase.UploadInput{
		MediaUpload: interfaces.MediaUpload{
			Body:        f,
			Size:        fh.Size,
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Folder:      form.Folder,
		},
		OrderID:   form.OrderID,
		Step:      form.Step,
		MediaType: entities.MediaType(strings.ToLower(strings.TrimSpace(form.MediaType))),
		Caption:   form.Caption,
	}
	created, err := h.usecase.Upload(c.Request.Context(), in)
	if err != nil {
		log.Error().Err(err).Str("order_id", form.OrderID).Str("filename", fh.Filename).Msg("[attachment][handler] upload failed")
		appErr := mapAttachmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// AddLink records an external video link (YouTube).
func (h *AttachmentHandler) AddLink(c *gin.Context) {
	var payload request.LinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	created, err := h.usecase.AddLink(c.Request.Context(), usecase.LinkInput{
		URL:     payload.URL,
		OrderID: payload.OrderID,
		Step:    payload.Step,
		Caption: payload.Caption,
	})
	if err != nil {
		appErr := mapAttachmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AttachmentHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapAttachmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapAttachmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAttachmentID), errors.Is(err, usecase.ErrInvalidMediaType),
		errors.Is(err, usecase.ErrEmptyUpload), errors.Is(err, usecase.ErrInvalidStep),
		errors.Is(err, interfaces.ErrInvalidMediaLink), errors.Is(err, interfaces.ErrUnsupportedProvider):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAttachmentNotFound):
		return pkg.NewDomainErrorSimple("ATTACHMENT_NOT_FOUND", "Attachment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound), errors.Is(err, usecase.ErrNoColumns):
		return mapServiceOrderError(err)
	default:
		return internalError(err)
	}
}
