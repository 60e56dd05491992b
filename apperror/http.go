package apperror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Respond translates a failure into its HTTP form. Every handler funnels its
// errors through here so the status mapping stays in one place:
//
//	validation failure    -> 400 {message}
//	record not found      -> 404, empty body
//	insufficient stock    -> 409 {message}
//	anything else         -> 500 {message}
func Respond(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, ErrValidation), errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}

// BindJSON wraps gin's JSON binding so malformed bodies and tag violations
// surface as validation failures rather than raw bind errors.
func BindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return Validation(verrs.Error())
		}
		return Validation(err.Error())
	}
	return nil
}
