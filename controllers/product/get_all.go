package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wonee1/comazon/apperror"
	"github.com/wonee1/comazon/models"
)

// GET /products
// Query params: offset, limit, order (newest|oldest|priceLowest|priceHighest)
// and an optional category filter.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil {
			apperror.Respond(c, apperror.Validation("invalid offset"))
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if err != nil {
			apperror.Respond(c, apperror.Validation("invalid limit"))
			return
		}

		var orderBy string
		switch c.DefaultQuery("order", "newest") {
		case "priceLowest":
			orderBy = "price asc"
		case "priceHighest":
			orderBy = "price desc"
		case "oldest":
			orderBy = "created_at asc"
		default:
			orderBy = "created_at desc"
		}

		query := db.Model(&models.Product{})
		if raw := c.Query("category"); raw != "" {
			category, err := models.ParseCategory(raw)
			if err != nil {
				apperror.Respond(c, apperror.Validation(err.Error()))
				return
			}
			query = query.Where("category = ?", category)
		}

		products := make([]models.Product, 0)
		if err := query.
			Order(orderBy).
			Offset(offset).
			Limit(limit).
			Find(&products).Error; err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
