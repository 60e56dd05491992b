package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wonee1/comazon/apperror"
	"github.com/wonee1/comazon/models"
)

// GET /users/:id/orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var user models.User
		if err := db.Select("id").First(&user, "id = ?", id).Error; err != nil {
			apperror.Respond(c, err)
			return
		}

		orders := make([]models.Order, 0)
		if err := db.Where("user_id = ?", id).Find(&orders).Error; err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
