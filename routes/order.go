package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/wonee1/comazon/controllers/order"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		orders.GET("", orderControllers.GetOrders(db))
		orders.GET("/:id", orderControllers.GetOrderByID(db))
		orders.POST("", orderControllers.CreateOrder(db))
		orders.PATCH("/:id", orderControllers.UpdateOrder(db))
		orders.DELETE("/:id", orderControllers.DeleteOrder(db))
	}
}
