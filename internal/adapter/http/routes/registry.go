package routes

import (
	"oficina_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers   = "/customers"
	PathTechnicians = "/technicians"
	PathParts       = "/parts"
)

func addRegistryRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler, technicianHandler *handlers.TechnicianHandler, partHandler *handlers.PartHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.GET("", customerHandler.List)
		customers.GET("/:id", customerHandler.Get)
		customers.POST("", customerHandler.Create)
		customers.PUT("/:id", customerHandler.Update)
		customers.DELETE("/:id", customerHandler.Delete)
	}

	technicians := rg.Group(PathTechnicians)
	{
		technicians.GET("", technicianHandler.List)
		technicians.POST("", technicianHandler.Create)
		technicians.PUT("/:id", technicianHandler.Update)
		technicians.PATCH("/:id/active", technicianHandler.SetActive)
		technicians.DELETE("/:id", technicianHandler.Delete)
	}

	parts := rg.Group(PathParts)
	{
		parts.GET("", partHandler.List)
		parts.POST("", partHandler.Create)
		parts.PUT("/:id", partHandler.Update)
		parts.DELETE("/:id", partHandler.Delete)
	}
}
