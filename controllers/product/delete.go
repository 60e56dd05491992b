package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wonee1/comazon/apperror"
	"github.com/wonee1/comazon/models"
)

// DELETE /products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			apperror.Respond(c, err)
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			// Drop saved-product links before the row itself.
			if err := tx.Exec(
				"DELETE FROM saved_products WHERE product_id = ?", product.ID,
			).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
