package orderControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/wonee1/comazon/database"
	"github.com/wonee1/comazon/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders", GetOrders(db))
	r.GET("/orders/:id", GetOrderByID(db))
	r.POST("/orders", CreateOrder(db))
	r.PATCH("/orders/:id", UpdateOrder(db))
	r.DELETE("/orders/:id", DeleteOrder(db))
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createTestUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		Email:          "hana@example.com",
		FirstName:      "Hana",
		LastName:       "Kim",
		Address:        "Seoul",
		UserPreference: &models.UserPreference{ReceiveEmail: true},
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()
	product := models.Product{
		Name:     name,
		Category: models.CategoryHomeInterior,
		Price:    price,
		Stock:    stock,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func currentStock(t *testing.T, db *gorm.DB, id string) int {
	t.Helper()
	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", id).Error)
	return product.Stock
}

func TestCreateOrderDecrementsStock(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	user := createTestUser(t, db)
	pen := createTestProduct(t, db, "Pen", 2, 5)

	body := map[string]any{
		"userId": user.ID,
		"orderItems": []map[string]any{
			{"productId": pen.ID, "quantity": 3, "unitPrice": 2},
		},
	}
	w := doRequest(r, http.MethodPost, "/orders", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	var got models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, models.OrderStatusPending, got.Status)
	require.Len(t, got.OrderItems, 1)
	assert.Equal(t, 3, got.OrderItems[0].Quantity)

	assert.Equal(t, 2, currentStock(t, db, pen.ID))

	// A second identical order would need 3 of the remaining 2.
	w = doRequest(r, http.MethodPost, "/orders", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "insufficient stock")

	assert.Equal(t, 2, currentStock(t, db, pen.ID))
	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.EqualValues(t, 1, orderCount)
}

func TestCreateOrderInsufficientStockIsAllOrNothing(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	user := createTestUser(t, db)
	plenty := createTestProduct(t, db, "Soap", 3, 100)
	scarce := createTestProduct(t, db, "Vase", 18, 1)

	w := doRequest(r, http.MethodPost, "/orders", map[string]any{
		"userId": user.ID,
		"orderItems": []map[string]any{
			{"productId": plenty.ID, "quantity": 2, "unitPrice": 3},
			{"productId": scarce.ID, "quantity": 5, "unitPrice": 18},
		},
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Nothing persisted, including the item that had stock.
	assert.Equal(t, 100, currentStock(t, db, plenty.ID))
	assert.Equal(t, 1, currentStock(t, db, scarce.ID))
	var orderCount, itemCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.EqualValues(t, 0, orderCount)
	assert.EqualValues(t, 0, itemCount)
}

func TestCreateOrderUnknownReferences(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	user := createTestUser(t, db)
	pen := createTestProduct(t, db, "Pen", 2, 5)

	// Unknown product.
	w := doRequest(r, http.MethodPost, "/orders", map[string]any{
		"userId": user.ID,
		"orderItems": []map[string]any{
			{"productId": "00000000-0000-4000-8000-000000000000", "quantity": 1, "unitPrice": 2},
		},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Unknown user.
	w = doRequest(r, http.MethodPost, "/orders", map[string]any{
		"userId": "00000000-0000-4000-8000-000000000000",
		"orderItems": []map[string]any{
			{"productId": pen.ID, "quantity": 1, "unitPrice": 2},
		},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 5, currentStock(t, db, pen.ID))
}

func TestCreateOrderValidation(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	user := createTestUser(t, db)
	pen := createTestProduct(t, db, "Pen", 2, 5)

	for name, body := range map[string]map[string]any{
		"userId not a uuid": {
			"userId": "42",
			"orderItems": []map[string]any{
				{"productId": pen.ID, "quantity": 1, "unitPrice": 2},
			},
		},
		"no items": {
			"userId":     user.ID,
			"orderItems": []map[string]any{},
		},
		"zero quantity": {
			"userId": user.ID,
			"orderItems": []map[string]any{
				{"productId": pen.ID, "quantity": 0, "unitPrice": 2},
			},
		},
	} {
		w := doRequest(r, http.MethodPost, "/orders", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
}

func TestGetOrderComputesTotal(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	user := createTestUser(t, db)
	order := models.Order{
		UserID: user.ID,
		OrderItems: []models.OrderItem{
			{ProductID: createTestProduct(t, db, "Pen", 2, 5).ID, Quantity: 3, UnitPrice: 2},
			{ProductID: createTestProduct(t, db, "Vase", 18, 5).ID, Quantity: 1, UnitPrice: 18.5},
		},
	}
	require.NoError(t, db.Create(&order).Error)

	w := doRequest(r, http.MethodGet, "/orders/"+order.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var got models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 24.5, got.Total)
	require.Len(t, got.OrderItems, 2)

	// Total is derived, never stored.
	assert.False(t, db.Migrator().HasColumn(&models.Order{}, "total"))

	// Reading again recomputes the same value.
	w = doRequest(r, http.MethodGet, "/orders/"+order.ID, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 24.5, got.Total)

	w = doRequest(r, http.MethodGet, "/orders/00000000-0000-4000-8000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrders(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	user := createTestUser(t, db)
	require.NoError(t, db.Create(&models.Order{UserID: user.ID}).Error)
	require.NoError(t, db.Create(&models.Order{UserID: user.ID}).Error)

	w := doRequest(r, http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 2)
}

func TestUpdateOrderStatus(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	user := createTestUser(t, db)
	order := models.Order{UserID: user.ID}
	require.NoError(t, db.Create(&order).Error)

	w := doRequest(r, http.MethodPatch, "/orders/"+order.ID,
		map[string]any{"status": "COMPLETE"})
	assert.Equal(t, http.StatusOK, w.Code)
	var got models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.OrderStatusComplete, got.Status)

	w = doRequest(r, http.MethodPatch, "/orders/"+order.ID,
		map[string]any{"status": "SHIPPED"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteOrder(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	user := createTestUser(t, db)
	order := models.Order{
		UserID: user.ID,
		OrderItems: []models.OrderItem{
			{ProductID: createTestProduct(t, db, "Pen", 2, 5).ID, Quantity: 1, UnitPrice: 2},
		},
	}
	require.NoError(t, db.Create(&order).Error)

	w := doRequest(r, http.MethodDelete, "/orders/"+order.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var orderCount, itemCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.EqualValues(t, 0, orderCount)
	assert.EqualValues(t, 0, itemCount)

	w = doRequest(r, http.MethodDelete, "/orders/"+order.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
