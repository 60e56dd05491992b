package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation error")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type AppError struct {
	Err     error  // error kind, one of the sentinels above
	Message string // human-readable message sent to the client
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func Validation(message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
	}
}

// InsufficientStock marks a business-rule violation: the requested quantity
// exceeds what the product has on hand. Distinct from internal failures so
// the HTTP layer can answer 409 instead of 500.
func InsufficientStock(productID string) *AppError {
	return &AppError{
		Err:     ErrInsufficientStock,
		Message: fmt.Sprintf("insufficient stock for product %s", productID),
	}
}
