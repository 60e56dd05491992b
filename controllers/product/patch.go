package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wonee1/comazon/apperror"
	"github.com/wonee1/comazon/models"
)

type PatchProductInput struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=60"`
	Description *string  `json:"description"`
	Category    *string  `json:"category" binding:"omitempty,oneof=FASHION BEAUTY SPORTS ELECTRONICS HOME_INTERIOR HOUSEHOLD_SUPPLIES KITCHENWARE"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
}

// PATCH /products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			apperror.Respond(c, err)
			return
		}

		var input PatchProductInput
		if err := apperror.BindJSON(c, &input); err != nil {
			apperror.Respond(c, err)
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Category != nil {
			updates["category"] = *input.Category
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}
		if input.Stock != nil {
			updates["stock"] = *input.Stock
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				apperror.Respond(c, err)
				return
			}
		}

		if err := db.First(&product, "id = ?", id).Error; err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
