package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wonee1/comazon/apperror"
	"github.com/wonee1/comazon/models"
)

type CreateProductInput struct {
	Name        string   `json:"name" binding:"required,min=1,max=60"`
	Description *string  `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required,oneof=FASHION BEAUTY SPORTS ELECTRONICS HOME_INTERIOR HOUSEHOLD_SUPPLIES KITCHENWARE"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Stock       *int     `json:"stock" binding:"required,gte=0"`
}

// POST /products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := apperror.BindJSON(c, &input); err != nil {
			apperror.Respond(c, err)
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: *input.Description,
			Category:    models.Category(input.Category),
			Price:       *input.Price,
			Stock:       *input.Stock,
		}
		if err := db.Create(&product).Error; err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
