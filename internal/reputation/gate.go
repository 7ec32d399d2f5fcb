package reputation

import (
	"github.com/YusovID/reputation-engine/internal/domain"
)

// Route decides which screen a customer sees after rating an experience:
// 4 and 5 lead to the public review platforms, 1 to 3 to private feedback.
//
// Whatever the branch, the decision carries every link in platformLinks. The
// rating changes which screen is emphasized, never which links exist.
func Route(rating int, platformLinks map[string]string) (domain.RoutingDecision, error) {
	if err := ValidateRating(rating); err != nil {
		return domain.RoutingDecision{}, err
	}

	decision := domain.RoutingPrivateFeedback
	if rating >= PositiveThreshold {
		decision = domain.RoutingPublicReviews
	}

	return domain.NewRoutingDecision(decision, platformLinks), nil
}
