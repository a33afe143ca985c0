package routes

import (
	"studio_orders/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathOrders = "/order"

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("/submit", orderHandler.SubmitOrder)
		orders.GET("/track/:order_id", orderHandler.TrackOrder)
		orders.PATCH("/:order_id/status", orderHandler.UpdateOrderStatus)
	}
}
