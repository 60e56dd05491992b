package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "PENDING"
	OrderStatusComplete OrderStatus = "COMPLETE"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusComplete:
		return OrderStatus(s), nil
	default:
		return "", errors.New("invalid order status: " + s)
	}
}

type Order struct {
	ID         string      `gorm:"primaryKey;type:uuid" json:"id"`
	UserID     string      `gorm:"not null;index" json:"userId"`
	Status     OrderStatus `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems,omitempty"`
	// Total is derived from the items on single-order reads and is never
	// stored.
	Total     float64   `gorm:"-" json:"total,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type OrderItem struct {
	ID        string  `gorm:"primaryKey;type:uuid" json:"id"`
	OrderID   string  `gorm:"not null;index" json:"orderId"`
	ProductID string  `gorm:"not null" json:"productId"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unitPrice"`
}

// ComputeTotal sums unitPrice times quantity over the loaded items.
func (o *Order) ComputeTotal() float64 {
	var total float64
	for _, item := range o.OrderItems {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return nil
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
