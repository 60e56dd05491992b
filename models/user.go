package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             string          `gorm:"primaryKey;type:uuid" json:"id"`
	Email          string          `gorm:"unique;not null" json:"email"`
	FirstName      string          `gorm:"not null" json:"firstName"`
	LastName       string          `gorm:"not null" json:"lastName"`
	Address        string          `json:"address"`
	UserPreference *UserPreference `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"userPreference,omitempty"`
	SavedProducts  []Product       `gorm:"many2many:saved_products" json:"savedProducts,omitempty"`
	Orders         []Order         `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// UserPreference lives and dies with its User; it is never created on its own.
type UserPreference struct {
	ID           string `gorm:"primaryKey;type:uuid" json:"id"`
	ReceiveEmail bool   `json:"receiveEmail"`
	UserID       string `gorm:"uniqueIndex;not null" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (p *UserPreference) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
