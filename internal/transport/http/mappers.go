package http

import (
	"github.com/YusovID/reputation-engine/internal/domain"
	"github.com/YusovID/reputation-engine/pkg/api"
)

func toAPISnapshot(s domain.ReputationSnapshot) api.ReputationSnapshot {
	return api.ReputationSnapshot{
		PublicRating: s.PublicRating,
		TotalReviews: s.TotalReviews,
		WilsonScore:  s.WilsonScore,
		HealthScore:  s.HealthScore,
		Badge:        api.Badge(s.Badge),
	}
}

func toAPIGoals(goals []domain.RatingGoal) []api.RatingGoal {
	out := make([]api.RatingGoal, len(goals))
	for i, g := range goals {
		out[i] = api.RatingGoal{
			Target:        g.Target,
			ReviewsNeeded: g.ReviewsNeeded,
			Progress:      g.Progress,
			Achieved:      g.Achieved,
		}
	}

	return out
}

func toAPIReview(r *domain.Review) api.Review {
	return api.Review{
		Id:         r.ID,
		BusinessId: r.BusinessID,
		Rating:     r.Rating,
		Source:     string(r.Source),
		CreatedAt:  r.CreatedAt,
		RepliedAt:  r.RepliedAt,
	}
}

// targetsOf turns an absent targets parameter into nil, which selects the configured defaults.
func targetsOf(targets *[]float64) []float64 {
	if targets == nil {
		return nil
	}

	return *targets
}

// nonNilLinks keeps "no platforms configured" serialized as {} rather than null.
func nonNilLinks(links map[string]string) map[string]string {
	if links == nil {
		return map[string]string{}
	}

	return links
}
