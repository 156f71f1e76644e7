package routes

import (
	"oficina_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAttachments = "/attachments"
	PathIntake      = "/intake"
	PathCatalog     = "/catalog"
)

func addAttachmentRoutes(rg *gin.RouterGroup, attachmentHandler *handlers.AttachmentHandler) {
	attachments := rg.Group(PathAttachments)
	{
		attachments.POST("", attachmentHandler.Upload)
		attachments.POST("/links", attachmentHandler.AddLink)
		attachments.DELETE("/:id", attachmentHandler.Delete)
	}
}

func addIntakeRoutes(rg *gin.RouterGroup, intakeHandler *handlers.IntakeHandler) {
	rg.GET(PathCatalog+"/equipment", intakeHandler.Equipment)

	intake := rg.Group(PathIntake)
	{
		intake.POST("/validate", intakeHandler.Validate)
		intake.POST("/orders", intakeHandler.Submit)
	}
}
