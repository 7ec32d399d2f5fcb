package reputation

import (
	"fmt"
	"math"

	"github.com/YusovID/reputation-engine/internal/domain"
)

// Absorbs representation error so an exact answer like 10 is not reported as 11.
const projectionEpsilon = 1e-9

// ProjectGoals reports, for each target in input order, how many additional
// 5-star reviews would lift the public rating to it. Targets are validated
// before anything is computed; duplicates are kept.
func (e *Engine) ProjectGoals(reviews []domain.Review, targets []float64) ([]domain.RatingGoal, error) {
	const op = "internal.reputation.ProjectGoals"

	for _, target := range targets {
		if err := ValidateTarget(target); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	t, err := tallyReviews(reviews)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rating := publicRating(t.sum, t.total)

	goals := make([]domain.RatingGoal, 0, len(targets))
	for _, target := range targets {
		goals = append(goals, e.projectGoal(t, rating, target))
	}

	return goals, nil
}

func (e *Engine) projectGoal(t tally, rating, target float64) domain.RatingGoal {
	if rating >= target {
		return domain.RatingGoal{
			Target:        target,
			ReviewsNeeded: 0,
			Progress:      100,
			Achieved:      true,
		}
	}

	return domain.RatingGoal{
		Target:        target,
		ReviewsNeeded: e.reviewsNeeded(t, target),
		Progress:      int(math.Round(100 * clamp(rating/target, 0, 1))),
		Achieved:      false,
	}
}

// reviewsNeeded solves (sum + 5n) / (total + n) >= target for the smallest
// integer n, assuming the target is not yet achieved.
func (e *Engine) reviewsNeeded(t tally, target float64) int {
	if t.total == 0 {
		// A single 5-star review rates 5.0.
		return 1
	}

	if target >= MaxRating {
		// Only a perfect history averages 5.0, and that case is achieved.
		return e.settings.GoalCap
	}

	n := (target*float64(t.total) - float64(t.sum)) / (MaxRating - target)
	needed := math.Max(1, math.Ceil(n-projectionEpsilon))

	if needed >= float64(e.settings.GoalCap) {
		return e.settings.GoalCap
	}

	return int(needed)
}
