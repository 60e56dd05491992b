package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/wonee1/comazon/controllers/user"
)

func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/users")
	{
		users.GET("", userControllers.GetUsers(db))
		users.GET("/:id", userControllers.GetUserByID(db))
		users.POST("", userControllers.CreateUser(db))
		users.PATCH("/:id", userControllers.UpdateUser(db))
		users.DELETE("/:id", userControllers.DeleteUser(db))

		users.GET("/:id/saved-products", userControllers.GetSavedProducts(db))
		users.POST("/:id/saved-products", userControllers.SaveProduct(db))

		users.GET("/:id/orders", userControllers.GetUserOrders(db))
	}
}
