package domain

import (
	"encoding/json"
	"maps"
	"time"
)

type Source string

const (
	SourceGoogle   Source = "GOOGLE"
	SourceFacebook Source = "FACEBOOK"
	SourceDirect   Source = "DIRECT"
)

// Review is a single star rating left for a business. Rating is expected to
// be in [1,5]; the scoring engine rejects anything else.
type Review struct {
	ID         string     `db:"id" json:"id"`
	BusinessID string     `db:"business_id" json:"business_id"`
	Rating     int        `db:"rating" json:"rating"`
	Source     Source     `db:"source" json:"source"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	RepliedAt  *time.Time `db:"replied_at" json:"replied_at,omitempty"`
}

type Badge string

const (
	BadgeUnranked             Badge = "Unranked"
	BadgeNewStarter           Badge = "New Starter"
	BadgeTopRated             Badge = "Top Rated"
	BadgeTrustedPro           Badge = "Trusted Pro"
	BadgeNeighborhoodFavorite Badge = "Neighborhood Favorite"
	BadgeRisingStar           Badge = "Rising Star"
	BadgeBuildingReputation   Badge = "Building Reputation"
)

type ReputationSnapshot struct {
	PublicRating float64 `json:"publicRating"`
	TotalReviews int     `json:"totalReviews"`
	WilsonScore  float64 `json:"wilsonScore"`
	HealthScore  int     `json:"healthScore"`
	Badge        Badge   `json:"badge"`
}

type RatingGoal struct {
	Target        float64 `json:"target"`
	ReviewsNeeded int     `json:"reviewsNeeded"`
	Progress      int     `json:"progress"`
	Achieved      bool    `json:"achieved"`
}

type Routing string

const (
	RoutingPublicReviews   Routing = "PUBLIC_REVIEWS"
	RoutingPrivateFeedback Routing = "PRIVATE_FEEDBACK"
)

// RoutingDecision tells the caller which screen to emphasize after a
// customer rates an experience. The link set is unexported: the only way to
// build a decision is NewRoutingDecision, which copies every configured
// platform link, so no decision can hide a platform from a low rater.
type RoutingDecision struct {
	decision Routing
	links    map[string]string
}

func NewRoutingDecision(decision Routing, platformLinks map[string]string) RoutingDecision {
	links := make(map[string]string, len(platformLinks))
	maps.Copy(links, platformLinks)

	return RoutingDecision{decision: decision, links: links}
}

func (d RoutingDecision) Decision() Routing { return d.decision }

// ReviewURLs returns a copy of every platform link the business has configured.
func (d RoutingDecision) ReviewURLs() map[string]string {
	links := make(map[string]string, len(d.links))
	maps.Copy(links, d.links)

	return links
}

type routingDecisionJSON struct {
	RoutingDecision Routing           `json:"routingDecision"`
	ReviewURLs      map[string]string `json:"reviewUrls"`
}

func (d RoutingDecision) MarshalJSON() ([]byte, error) {
	return json.Marshal(routingDecisionJSON{
		RoutingDecision: d.decision,
		ReviewURLs:      d.ReviewURLs(),
	})
}

func (d *RoutingDecision) UnmarshalJSON(data []byte) error {
	var raw routingDecisionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = NewRoutingDecision(raw.RoutingDecision, raw.ReviewURLs)

	return nil
}

// FeedbackRequest is the public link a customer receives to rate a visit.
type FeedbackRequest struct {
	Token      string     `db:"token"`
	BusinessID string     `db:"business_id"`
	CreatedAt  time.Time  `db:"created_at"`
	RatedAt    *time.Time `db:"rated_at"`
}

// FeedbackResponse is the audit record of one gate evaluation.
type FeedbackResponse struct {
	ID            string    `db:"id"`
	CustomerToken string    `db:"customer_token"`
	BusinessID    string    `db:"business_id"`
	Rating        int       `db:"rating"`
	Decision      Routing   `db:"decision"`
	LinksShown    int       `db:"links_shown"`
	CreatedAt     time.Time `db:"created_at"`
}

type Dashboard struct {
	Snapshot   ReputationSnapshot `json:"snapshot"`
	Goals      []RatingGoal       `json:"goals"`
	ReviewURLs map[string]string  `json:"reviewUrls"`
}
