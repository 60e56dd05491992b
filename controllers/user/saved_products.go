package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wonee1/comazon/apperror"
	"github.com/wonee1/comazon/models"
)

type SaveProductInput struct {
	ProductID string `json:"productId" binding:"required,uuid4"`
}

// GET /users/:id/saved-products
func GetSavedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.
			Preload("SavedProducts").
			First(&user, "id = ?", c.Param("id")).Error; err != nil {
			apperror.Respond(c, err)
			return
		}

		products := user.SavedProducts
		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /users/:id/saved-products
// Connects an existing product to the user's saved set. Appending an already
// saved product is a no-op, so the call is idempotent.
func SaveProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SaveProductInput
		if err := apperror.BindJSON(c, &input); err != nil {
			apperror.Respond(c, err)
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			apperror.Respond(c, err)
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperror.Respond(c, apperror.NotFound("product", input.ProductID))
				return
			}
			apperror.Respond(c, err)
			return
		}

		if err := db.Model(&user).
			Association("SavedProducts").
			Append(&product); err != nil {
			apperror.Respond(c, err)
			return
		}

		var saved []models.Product
		if err := db.Model(&user).
			Association("SavedProducts").
			Find(&saved); err != nil {
			apperror.Respond(c, err)
			return
		}
		if saved == nil {
			saved = []models.Product{}
		}
		c.JSON(http.StatusOK, saved)
	}
}
