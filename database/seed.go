package database

import (
	"gorm.io/gorm"

	"github.com/wonee1/comazon/models"
)

// Seed wipes the tables and repopulates them with sample data. Deletion order
// respects the foreign keys: items before orders, preferences before users.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&models.OrderItem{},
			&models.Order{},
			&models.UserPreference{},
			&models.User{},
			&models.Product{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
				Delete(model).Error; err != nil {
				return err
			}
		}

		products := []models.Product{
			{Name: "Wireless Earbuds", Description: "Bluetooth 5.3, 24h battery", Category: models.CategoryElectronics, Price: 49.99, Stock: 120},
			{Name: "Ceramic Vase", Description: "Hand-glazed, 25cm", Category: models.CategoryHomeInterior, Price: 18.5, Stock: 40},
			{Name: "Running Shoes", Description: "Lightweight trainers", Category: models.CategorySports, Price: 89.0, Stock: 60},
			{Name: "Chef Knife", Description: "8-inch stainless steel", Category: models.CategoryKitchenware, Price: 35.0, Stock: 25},
			{Name: "Linen Shirt", Description: "Relaxed fit", Category: models.CategoryFashion, Price: 42.0, Stock: 80},
			{Name: "Dish Soap", Description: "Citrus, 500ml", Category: models.CategoryHouseholdSupplies, Price: 3.2, Stock: 300},
			{Name: "Face Serum", Description: "Vitamin C, 30ml", Category: models.CategoryBeauty, Price: 21.0, Stock: 90},
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}

		users := []models.User{
			{
				Email:          "hana@example.com",
				FirstName:      "Hana",
				LastName:       "Kim",
				Address:        "12 Mapo-daero, Seoul",
				UserPreference: &models.UserPreference{ReceiveEmail: true},
			},
			{
				Email:          "minsu@example.com",
				FirstName:      "Minsu",
				LastName:       "Lee",
				Address:        "7 Haeundae-ro, Busan",
				UserPreference: &models.UserPreference{ReceiveEmail: false},
			},
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		order := models.Order{
			UserID: users[0].ID,
			Status: models.OrderStatusComplete,
			OrderItems: []models.OrderItem{
				{ProductID: products[0].ID, Quantity: 1, UnitPrice: products[0].Price},
				{ProductID: products[3].ID, Quantity: 2, UnitPrice: products[3].Price},
			},
		}
		return tx.Create(&order).Error
	})
}
