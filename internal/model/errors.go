package model

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest marks an intake request rejected before any side effect.
var ErrInvalidRequest = errors.New("invalid notification request")

// ErrorCategory is a closed classification of delivery failures, attached at
// the point the error is raised so statistics never parse error strings.
type ErrorCategory string

const (
	CategorySMTP     ErrorCategory = "smtp"
	CategoryPush     ErrorCategory = "push"
	CategoryTemplate ErrorCategory = "template"
	CategoryUnknown  ErrorCategory = "unknown"
)

// DeliveryError is a provider failure carrying its category.
type DeliveryError struct {
	Category ErrorCategory
	Err      error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Category, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// NewDeliveryError wraps a provider error with its category.
func NewDeliveryError(category ErrorCategory, err error) *DeliveryError {
	return &DeliveryError{Category: category, Err: err}
}

// CategoryOf extracts the category from a delivery error chain, falling back
// to CategoryUnknown for errors raised outside the taxonomy.
func CategoryOf(err error) ErrorCategory {
	var de *DeliveryError
	if errors.As(err, &de) {
		return de.Category
	}
	return CategoryUnknown
}
