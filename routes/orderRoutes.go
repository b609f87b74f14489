package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dopetech/dopetech-api/controllers"
)

func OrderRoutes(server *gin.Engine, orders *controllers.OrderController) {
	api := server.Group("/api")
	{
		api.GET("/orders", orders.GetOrders)
		api.POST("/orders", orders.CreateOrder)
		api.PATCH("/orders", orders.UpdateOrderStatus)
	}
}
