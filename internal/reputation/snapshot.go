package reputation

import (
	"fmt"
	"math"
	"time"

	"github.com/YusovID/reputation-engine/internal/domain"
)

const (
	// z for a two-sided 95% confidence interval.
	wilsonZ = 1.96

	qualityWeight        = 0.60
	velocityWeight       = 0.25
	responsivenessWeight = 0.15
)

// Engine computes snapshots and goal projections with a fixed Settings.
type Engine struct {
	settings Settings
	now      func() time.Time
}

type Option func(*Engine)

// WithClock overrides the clock used for the velocity window.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func New(settings Settings, opts ...Option) *Engine {
	e := &Engine{
		settings: settings,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) Settings() Settings {
	return e.settings
}

// ComputeSnapshot aggregates reviews into a ReputationSnapshot. A single
// rating outside [1,5] fails the whole computation.
func (e *Engine) ComputeSnapshot(reviews []domain.Review) (domain.ReputationSnapshot, error) {
	const op = "internal.reputation.ComputeSnapshot"

	t, err := tallyReviews(reviews)
	if err != nil {
		return domain.ReputationSnapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	if t.total == 0 {
		return domain.ReputationSnapshot{Badge: domain.BadgeUnranked}, nil
	}

	rating := publicRating(t.sum, t.total)
	wilson := WilsonLowerBound(t.positive, t.total)
	health := e.healthScore(reviews, wilson)

	return domain.ReputationSnapshot{
		PublicRating: rating,
		TotalReviews: t.total,
		WilsonScore:  wilson,
		HealthScore:  health,
		Badge:        AssignBadge(health, t.total, rating),
	}, nil
}

// WilsonLowerBound is the lower bound of the 95% Wilson score interval for
// positive/n. It is 0 when n is 0 and always within [0,1].
func WilsonLowerBound(positive, n int) float64 {
	if n <= 0 {
		return 0
	}

	nf := float64(n)
	p := float64(positive) / nf
	z2 := wilsonZ * wilsonZ

	centre := p + z2/(2*nf)
	margin := wilsonZ * math.Sqrt((p*(1-p)+z2/(4*nf))/nf)

	return clamp((centre-margin)/(1+z2/nf), 0, 1)
}

// AssignBadge walks the badge table top-down. Order matters.
func AssignBadge(healthScore, totalReviews int, publicRating float64) domain.Badge {
	switch {
	case totalReviews == 0:
		return domain.BadgeUnranked
	case totalReviews < 5:
		return domain.BadgeNewStarter
	case healthScore >= 76 && publicRating >= 4.5:
		return domain.BadgeTopRated
	case healthScore >= 76:
		return domain.BadgeTrustedPro
	case healthScore >= 46 && publicRating >= 4.7:
		return domain.BadgeNeighborhoodFavorite
	case healthScore >= 46:
		return domain.BadgeRisingStar
	default:
		return domain.BadgeBuildingReputation
	}
}

func (e *Engine) healthScore(reviews []domain.Review, wilson float64) int {
	composite := qualityWeight*wilson +
		velocityWeight*e.velocity(reviews) +
		responsivenessWeight*e.responsiveness(reviews)

	return int(math.Round(100 * clamp(composite, 0, 1)))
}

// velocity saturates at VelocityTarget reviews inside the trailing window.
func (e *Engine) velocity(reviews []domain.Review) float64 {
	cutoff := e.now().Add(-e.settings.VelocityWindow)

	recent := 0

	for _, r := range reviews {
		if !r.CreatedAt.Before(cutoff) {
			recent++
		}
	}

	return math.Min(1, float64(recent)/float64(e.settings.VelocityTarget))
}

// responsiveness is the share of negative reviews answered within the SLA.
// Positive reviews never need a reply, so adding them cannot lower it.
func (e *Engine) responsiveness(reviews []domain.Review) float64 {
	needReply, answered := 0, 0

	for _, r := range reviews {
		if r.Rating >= PositiveThreshold {
			continue
		}

		needReply++

		if r.RepliedAt != nil && r.RepliedAt.Sub(r.CreatedAt) <= e.settings.ResponsivenessSLA {
			answered++
		}
	}

	if needReply == 0 {
		return 1
	}

	return float64(answered) / float64(needReply)
}

type tally struct {
	total    int
	sum      int
	positive int
}

func tallyReviews(reviews []domain.Review) (tally, error) {
	var t tally

	for _, r := range reviews {
		if err := ValidateRating(r.Rating); err != nil {
			return tally{}, fmt.Errorf("review '%s': %w", r.ID, err)
		}

		t.total++
		t.sum += r.Rating

		if r.Rating >= PositiveThreshold {
			t.positive++
		}
	}

	return t, nil
}

func publicRating(sum, total int) float64 {
	if total == 0 {
		return 0
	}

	return math.Round(float64(sum)/float64(total)*10) / 10
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
