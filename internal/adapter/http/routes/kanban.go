package routes

import (
	"oficina_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathKanban = "/kanban"

func addKanbanRoutes(rg *gin.RouterGroup, kanbanHandler *handlers.KanbanHandler) {
	kanban := rg.Group(PathKanban)
	{
		kanban.GET("/columns", kanbanHandler.ListColumns)
		kanban.POST("/columns", kanbanHandler.CreateColumn)
		kanban.PATCH("/columns/:slug", kanbanHandler.RenameColumn)
		kanban.PATCH("/columns/:slug/position", kanbanHandler.MoveColumn)
		kanban.DELETE("/columns/:slug", kanbanHandler.DeleteColumn)
		kanban.GET("/board", kanbanHandler.Board)
	}
}
