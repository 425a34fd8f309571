package routes

import (
	"os_service_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders = "/service-orders"
	PathStock         = "/stock"
)

func addServiceOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.ServiceOrderHandler, insumoHandler *handlers.InsumoHandler) {
	orders := rg.Group(PathServiceOrders)
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.GetByID)
		orders.PATCH("/:id", orderHandler.Update)
		orders.DELETE("/:id", orderHandler.Delete)

		// Customer decision on the budget.
		orders.POST("/:id/quote/approve", orderHandler.ApproveQuote)
		orders.POST("/:id/quote/refuse", orderHandler.RefuseQuote)

		orders.POST("/:id/insumos", insumoHandler.AddInsumos)
	}

	stock := rg.Group(PathStock)
	{
		stock.POST("/returns", insumoHandler.ReturnToStock)
	}
}
