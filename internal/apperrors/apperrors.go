package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidRequest = errors.New("invalid request body")
	ErrValidation     = errors.New("validation failed")

	ErrInvalidRating     = errors.New("rating must be an integer between 1 and 5")
	ErrInvalidGoalTarget = errors.New("goal target must be greater than 0 and at most 5")
	ErrConfiguration     = errors.New("invalid scoring configuration")
)

// InvalidRatingError is returned for a star rating outside [1,5], both at
// ingestion and at the feedback gate. It is never clamped.
type InvalidRatingError struct{ Rating int }

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("invalid rating %d: must be between 1 and 5", e.Rating)
}
func (e *InvalidRatingError) Is(target error) bool { return target == ErrInvalidRating }

// InvalidGoalTargetError is returned for a milestone target outside (0,5].
type InvalidGoalTargetError struct{ Target float64 }

func (e *InvalidGoalTargetError) Error() string {
	return fmt.Sprintf("invalid goal target %g: must be greater than 0 and at most 5", e.Target)
}
func (e *InvalidGoalTargetError) Is(target error) bool { return target == ErrInvalidGoalTarget }

// ConfigurationError marks missing or invalid scoring configuration.
// It is fatal at startup.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration field '%s': %s", e.Field, e.Reason)
}
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }
