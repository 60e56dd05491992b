package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category string

const (
	CategoryFashion           Category = "FASHION"
	CategoryBeauty            Category = "BEAUTY"
	CategorySports            Category = "SPORTS"
	CategoryElectronics       Category = "ELECTRONICS"
	CategoryHomeInterior      Category = "HOME_INTERIOR"
	CategoryHouseholdSupplies Category = "HOUSEHOLD_SUPPLIES"
	CategoryKitchenware       Category = "KITCHENWARE"
)

// ParseCategory maps a raw string to a Category, rejecting anything outside
// the closed set. Used for the product listing filter; request bodies are
// checked by binding tags instead.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryFashion, CategoryBeauty, CategorySports, CategoryElectronics,
		CategoryHomeInterior, CategoryHouseholdSupplies, CategoryKitchenware:
		return Category(s), nil
	default:
		return "", errors.New("invalid category: " + s)
	}
}

type Product struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Category    Category  `gorm:"type:VARCHAR(30);not null" json:"category"`
	Price       float64   `gorm:"not null" json:"price"`
	Stock       int       `gorm:"not null" json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
