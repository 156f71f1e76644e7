package routes

import (
	"oficina_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders  = "/orders"
	PathBudgets = "/budgets"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.ServiceOrderHandler, budgetHandler *handlers.BudgetHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.List)
		orders.GET("/export", orderHandler.Export)
		orders.GET("/:id", orderHandler.Get)
		orders.PATCH("/:id", orderHandler.Update)
		orders.POST("/:id/advance", orderHandler.Advance)
		orders.POST("/:id/move", orderHandler.Move)
		orders.GET("/:id/transitions", orderHandler.Transitions)

		orders.GET("/:id/budget", budgetHandler.GetByOrder)
		orders.POST("/:id/budget", budgetHandler.Create)
	}
}

func addBudgetRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler, paymentHandler *handlers.BudgetPaymentHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("/:id/items", budgetHandler.AddItem)
		budgets.DELETE("/:id/items/:item_id", budgetHandler.RemoveItem)
		budgets.PATCH("/:id/labor", budgetHandler.UpdateLabor)
		budgets.PATCH("/:id/approve", budgetHandler.Approve)
		budgets.PATCH("/:id/reject", budgetHandler.Reject)

		budgets.POST("/:id/payments", paymentHandler.Charge)
		budgets.GET("/:id/payments", paymentHandler.List)
	}
}
