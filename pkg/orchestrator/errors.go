package orchestrator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is matched by validation errors for width or height.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidCount is matched by validation errors for a bulk count.
	ErrInvalidCount = errors.New("invalid count")
)

// ValidationError reports a request rejected before any rendering began.
type ValidationError struct {
	Kind      error  // ErrInvalidDimension or ErrInvalidCount
	SizeLimit bool   // the value exceeded a configured maximum
	Message   string // user-facing detail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// ValidateDimensions checks that both sides are positive and at most maxSide.
func ValidateDimensions(width, height, maxSide int) error {
	if width <= 0 || height <= 0 {
		return &ValidationError{
			Kind:    ErrInvalidDimension,
			Message: "Width and height must be positive numbers",
		}
	}
	if width > maxSide || height > maxSide {
		return &ValidationError{
			Kind:      ErrInvalidDimension,
			SizeLimit: true,
			Message:   fmt.Sprintf("Maximum dimension is %d pixels", maxSide),
		}
	}
	return nil
}

// ValidateCount checks that a bulk count is in [1, maxCount].
func ValidateCount(count, maxCount int) error {
	if count < 1 || count > maxCount {
		return &ValidationError{
			Kind:      ErrInvalidCount,
			SizeLimit: count > maxCount,
			Message:   fmt.Sprintf("Count must be between 1 and %d", maxCount),
		}
	}
	return nil
}
