package userControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wonee1/comazon/apperror"
	"github.com/wonee1/comazon/models"
)

// -------- Request Structs --------

type UserPreferenceInput struct {
	ReceiveEmail *bool `json:"receiveEmail" binding:"required"`
}

type CreateUserInput struct {
	Email          string               `json:"email" binding:"required,email"`
	FirstName      string               `json:"firstName" binding:"required,min=1,max=30"`
	LastName       string               `json:"lastName" binding:"required,min=1,max=30"`
	Address        *string              `json:"address" binding:"required"`
	UserPreference *UserPreferenceInput `json:"userPreference" binding:"required"`
}

type PatchUserInput struct {
	Email          *string              `json:"email" binding:"omitempty,email"`
	FirstName      *string              `json:"firstName" binding:"omitempty,min=1,max=30"`
	LastName       *string              `json:"lastName" binding:"omitempty,min=1,max=30"`
	Address        *string              `json:"address"`
	UserPreference *UserPreferenceInput `json:"userPreference"`
}

// GET /users
func GetUsers(db *gorm.DB) gin.HandlerFunc {
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
		case "oldest":
			orderBy = "created_at asc"
		default:
			orderBy = "created_at desc"
		}

		users := make([]models.User, 0)
		if err := db.
			Preload("UserPreference").
			Order(orderBy).
			Offset(offset).
			Limit(limit).
			Find(&users).Error; err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GET /users/:id
func GetUserByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.
			Preload("UserPreference").
			First(&user, "id = ?", c.Param("id")).Error; err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// POST /users
// Creates the user and its preference as one unit; a user never exists
// without one.
func CreateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateUserInput
		if err := apperror.BindJSON(c, &input); err != nil {
			apperror.Respond(c, err)
			return
		}

		user := models.User{
			Email:     input.Email,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Address:   *input.Address,
			UserPreference: &models.UserPreference{
				ReceiveEmail: *input.UserPreference.ReceiveEmail,
			},
		}
		if err := db.Create(&user).Error; err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// PATCH /users/:id
// Partially updates the user's own fields. The related preference is touched
// only when the body explicitly carries a userPreference object, in which
// case it is upserted.
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			apperror.Respond(c, err)
			return
		}

		var input PatchUserInput
		if err := apperror.BindJSON(c, &input); err != nil {
			apperror.Respond(c, err)
			return
		}

		updates := make(map[string]interface{})
		if input.Email != nil {
			updates["email"] = *input.Email
		}
		if input.FirstName != nil {
			updates["first_name"] = *input.FirstName
		}
		if input.LastName != nil {
			updates["last_name"] = *input.LastName
		}
		if input.Address != nil {
			updates["address"] = *input.Address
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if len(updates) > 0 {
				if err := tx.Model(&user).Updates(updates).Error; err != nil {
					return err
				}
			}
			if input.UserPreference != nil {
				return upsertPreference(tx, user.ID, *input.UserPreference.ReceiveEmail)
			}
			return nil
		})
		if err != nil {
			apperror.Respond(c, err)
			return
		}

		if err := db.
			Preload("UserPreference").
			First(&user, "id = ?", id).Error; err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func upsertPreference(tx *gorm.DB, userID string, receiveEmail bool) error {
	var pref models.UserPreference
	err := tx.First(&pref, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&models.UserPreference{
			UserID:       userID,
			ReceiveEmail: receiveEmail,
		}).Error
	}
	if err != nil {
		return err
	}
	return tx.Model(&pref).Update("receive_email", receiveEmail).Error
}

// DELETE /users/:id
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			apperror.Respond(c, err)
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ?", user.ID).
				Delete(&models.UserPreference{}).Error; err != nil {
				return err
			}
			if err := tx.Model(&user).Association("SavedProducts").Clear(); err != nil {
				return err
			}
			return tx.Delete(&user).Error
		})
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
