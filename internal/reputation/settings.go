// Package reputation is the scoring and routing engine: it turns a business's
// review set into a ReputationSnapshot, projects how many 5-star reviews are
// needed to reach rating milestones, and decides where a customer goes after
// rating an experience.
//
// Everything here is a pure function of its inputs and the immutable Settings
// it was built with. There is no I/O, no locking and no background work, so an
// Engine may be shared by any number of goroutines.
package reputation

import (
	"fmt"
	"math"
	"time"

	"github.com/YusovID/reputation-engine/internal/apperrors"
)

const (
	MinRating = 1
	MaxRating = 5

	// PositiveThreshold is the lowest rating counted as positive, both for the
	// Wilson score and for the routing gate.
	PositiveThreshold = 4
)

// Settings holds the tunable constants of the health score and the goal
// projector. It is loaded once at startup and never mutated.
type Settings struct {
	// VelocityTarget is the number of reviews inside VelocityWindow that
	// saturates the velocity sub-score.
	VelocityTarget    int
	VelocityWindow    time.Duration
	ResponsivenessSLA time.Duration
	// GoalCap stands in for "unreachable" (a 5.0 target with any non-perfect
	// history) and bounds every other projection.
	GoalCap        int
	DefaultTargets []float64
}

func DefaultSettings() Settings {
	return Settings{
		VelocityTarget:    10,
		VelocityWindow:    90 * 24 * time.Hour,
		ResponsivenessSLA: 7 * 24 * time.Hour,
		GoalCap:           9999,
		DefaultTargets:    []float64{4.8, 4.9, 5.0},
	}
}

// Validate reports the first invalid field as a *apperrors.ConfigurationError.
func (s Settings) Validate() error {
	switch {
	case s.VelocityTarget <= 0:
		return &apperrors.ConfigurationError{Field: "scoring.velocity_target", Reason: "must be positive"}
	case s.VelocityWindow <= 0:
		return &apperrors.ConfigurationError{Field: "scoring.velocity_window", Reason: "must be positive"}
	case s.ResponsivenessSLA <= 0:
		return &apperrors.ConfigurationError{Field: "scoring.responsiveness_sla", Reason: "must be positive"}
	case s.GoalCap < 1:
		return &apperrors.ConfigurationError{Field: "scoring.goal_cap", Reason: "must be at least 1"}
	case len(s.DefaultTargets) == 0:
		return &apperrors.ConfigurationError{Field: "scoring.default_targets", Reason: "must not be empty"}
	}

	for _, target := range s.DefaultTargets {
		if err := ValidateTarget(target); err != nil {
			return &apperrors.ConfigurationError{
				Field:  "scoring.default_targets",
				Reason: fmt.Sprintf("target %g is outside (0, 5]", target),
			}
		}
	}

	return nil
}

// ValidateRating rejects anything outside [1,5].
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return &apperrors.InvalidRatingError{Rating: rating}
	}

	return nil
}

// ValidateTarget rejects targets outside (0,5], including NaN.
func ValidateTarget(target float64) error {
	if math.IsNaN(target) || target <= 0 || target > MaxRating {
		return &apperrors.InvalidGoalTargetError{Target: target}
	}

	return nil
}
