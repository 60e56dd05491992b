package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/wonee1/comazon/controllers/product"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productControllers.GetProducts(db))
		products.GET("/:id", productControllers.GetProductByID(db))
		products.POST("", productControllers.CreateProduct(db))
		products.PATCH("/:id", productControllers.UpdateProduct(db))
		products.DELETE("/:id", productControllers.DeleteProduct(db))
	}
}
