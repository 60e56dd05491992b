package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wonee1/comazon/apperror"
	"github.com/wonee1/comazon/models"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID string   `json:"productId" binding:"required,uuid4"`
	Quantity  int      `json:"quantity" binding:"required,gt=0"`
	UnitPrice *float64 `json:"unitPrice" binding:"required,gte=0"`
}

type CreateOrderInput struct {
	UserID     string           `json:"userId" binding:"required,uuid4"`
	OrderItems []OrderItemInput `json:"orderItems" binding:"required,min=1,dive"`
}

type PatchOrderInput struct {
	Status string `json:"status" binding:"required,oneof=PENDING COMPLETE"`
}

// -------- Handlers --------

// GET /orders
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := make([]models.Order, 0)
		if err := db.Find(&orders).Error; err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:id
// Loads the order with its items and attaches the derived total.
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.
			Preload("OrderItems").
			First(&order, "id = ?", c.Param("id")).Error; err != nil {
			apperror.Respond(c, err)
			return
		}
		order.Total = order.ComputeTotal()
		c.JSON(http.StatusOK, order)
	}
}

// POST /orders
// Creates the order and decrements each product's stock as one transaction.
// The decrement is a guarded UPDATE (stock = stock - n WHERE stock >= n), so
// two concurrent orders for the same product can never drive stock negative:
// the slower one sees zero rows affected and the whole transaction rolls
// back, leaving no order, no items and no stock change.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateOrderInput
		if err := apperror.BindJSON(c, &input); err != nil {
			apperror.Respond(c, err)
			return
		}

		var order models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			var user models.User
			if err := tx.Select("id").First(&user, "id = ?", input.UserID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperror.NotFound("user", input.UserID)
				}
				return err
			}

			items := make([]models.OrderItem, 0, len(input.OrderItems))
			for _, item := range input.OrderItems {
				var product models.Product
				if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return apperror.NotFound("product", item.ProductID)
					}
					return err
				}
				if product.Stock < item.Quantity {
					return apperror.InsufficientStock(product.ID)
				}

				res := tx.Model(&models.Product{}).
					Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
					UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return apperror.InsufficientStock(item.ProductID)
				}

				items = append(items, models.OrderItem{
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
					UnitPrice: *item.UnitPrice,
				})
			}

			order = models.Order{
				UserID:     input.UserID,
				OrderItems: items,
			}
			return tx.Create(&order).Error
		})
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// PATCH /orders/:id
func UpdateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var order models.Order
		if err := db.First(&order, "id = ?", id).Error; err != nil {
			apperror.Respond(c, err)
			return
		}

		var input PatchOrderInput
		if err := apperror.BindJSON(c, &input); err != nil {
			apperror.Respond(c, err)
			return
		}

		status, err := models.ParseOrderStatus(input.Status)
		if err != nil {
			apperror.Respond(c, apperror.Validation(err.Error()))
			return
		}

		if err := db.Model(&order).Update("status", status).Error; err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /orders/:id
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			apperror.Respond(c, err)
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
