package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/YusovID/reputation-engine/internal/domain"
	"github.com/YusovID/reputation-engine/internal/repository"
	"github.com/YusovID/reputation-engine/internal/reputation"
	"github.com/YusovID/reputation-engine/pkg/logger/sl"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type ReputationService interface {
	GetSnapshot(ctx context.Context, businessID string) (*domain.ReputationSnapshot, error)
	GetGoals(ctx context.Context, businessID string, targets []float64) ([]domain.RatingGoal, error)
	GetDashboard(ctx context.Context, businessID string, targets []float64) (*domain.Dashboard, error)
	AddReview(ctx context.Context, review NewReview) (*domain.Review, error)
	ReplyToReview(ctx context.Context, reviewID string) (*domain.Review, error)
}

// NewReview is an incoming review. A zero CreatedAt means "now".
type NewReview struct {
	BusinessID string
	Rating     int
	Source     domain.Source
	CreatedAt  time.Time
}

type ReputationServiceImpl struct {
	log     *slog.Logger
	engine  *reputation.Engine
	reviews repository.ReviewRepository
	links   repository.PlatformLinkRepository
	cache   repository.SnapshotCache
	now     func() time.Time
}

func NewReputationService(
	log *slog.Logger,
	engine *reputation.Engine,
	reviews repository.ReviewRepository,
	links repository.PlatformLinkRepository,
	cache repository.SnapshotCache,
) *ReputationServiceImpl {
	return &ReputationServiceImpl{
		log:     log,
		engine:  engine,
		reviews: reviews,
		links:   links,
		cache:   cache,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *ReputationServiceImpl) GetSnapshot(ctx context.Context, businessID string) (*domain.ReputationSnapshot, error) {
	const op = "internal.service.reputation.GetSnapshot"
	log := s.log.With(slog.String("op", op), slog.String("business_id", businessID))

	cached, err := s.cache.Get(ctx, businessID)
	switch {
	case err != nil:
		snapshotCacheTotal.WithLabelValues(cacheError).Inc()
		log.Warn("snapshot cache lookup failed", sl.Err(err))
	case cached != nil:
		snapshotCacheTotal.WithLabelValues(cacheHit).Inc()
		return cached, nil
	default:
		snapshotCacheTotal.WithLabelValues(cacheMiss).Inc()
	}

	reviews, err := s.reviews.ListReviews(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list reviews: %w", op, err)
	}

	snapshot, err := s.engine.ComputeSnapshot(reviews)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Set(ctx, businessID, snapshot); err != nil {
		log.Warn("failed to cache snapshot", sl.Err(err))
	}

	log.Debug("snapshot computed",
		slog.Int("total_reviews", snapshot.TotalReviews),
		slog.Int("health_score", snapshot.HealthScore),
	)

	return &snapshot, nil
}

// GetGoals rejects bad targets before touching storage. An empty target list
// falls back to the configured milestones.
func (s *ReputationServiceImpl) GetGoals(ctx context.Context, businessID string, targets []float64) ([]domain.RatingGoal, error) {
	const op = "internal.service.reputation.GetGoals"

	targets, err := s.resolveTargets(targets)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reviews, err := s.reviews.ListReviews(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list reviews: %w", op, err)
	}

	goals, err := s.engine.ProjectGoals(reviews, targets)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return goals, nil
}

func (s *ReputationServiceImpl) GetDashboard(ctx context.Context, businessID string, targets []float64) (*domain.Dashboard, error) {
	const op = "internal.service.reputation.GetDashboard"

	targets, err := s.resolveTargets(targets)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var (
		reviews []domain.Review
		links   map[string]string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		reviews, err = s.reviews.ListReviews(gctx, businessID)
		if err != nil {
			return fmt.Errorf("failed to list reviews: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		links, err = s.links.GetPlatformLinks(gctx, businessID)
		if err != nil {
			return fmt.Errorf("failed to get platform links: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	snapshot, err := s.engine.ComputeSnapshot(reviews)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	goals, err := s.engine.ProjectGoals(reviews, targets)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if links == nil {
		links = map[string]string{}
	}

	return &domain.Dashboard{
		Snapshot:   snapshot,
		Goals:      goals,
		ReviewURLs: links,
	}, nil
}

func (s *ReputationServiceImpl) AddReview(ctx context.Context, in NewReview) (*domain.Review, error) {
	const op = "internal.service.reputation.AddReview"
	log := s.log.With(slog.String("op", op), slog.String("business_id", in.BusinessID))

	if err := reputation.ValidateRating(in.Rating); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	createdAt := in.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}

	review := &domain.Review{
		ID:         uuid.NewString(),
		BusinessID: in.BusinessID,
		Rating:     in.Rating,
		Source:     in.Source,
		CreatedAt:  createdAt.UTC(),
	}

	if err := s.reviews.CreateReview(ctx, review); err != nil {
		return nil, fmt.Errorf("%s: failed to create review: %w", op, err)
	}

	s.invalidate(ctx, log, in.BusinessID)

	log.Info("review added", slog.String("review_id", review.ID), slog.Int("rating", review.Rating))

	return review, nil
}

func (s *ReputationServiceImpl) ReplyToReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	const op = "internal.service.reputation.ReplyToReview"
	log := s.log.With(slog.String("op", op), slog.String("review_id", reviewID))

	review, err := s.reviews.MarkReplied(ctx, reviewID, s.now())
	if err != nil {
		return nil, fmt.Errorf("%s: failed to mark review replied: %w", op, err)
	}

	s.invalidate(ctx, log, review.BusinessID)

	log.Info("review replied", slog.String("business_id", review.BusinessID))

	return review, nil
}

func (s *ReputationServiceImpl) resolveTargets(targets []float64) ([]float64, error) {
	if len(targets) == 0 {
		return s.engine.Settings().DefaultTargets, nil
	}

	for _, target := range targets {
		if err := reputation.ValidateTarget(target); err != nil {
			return nil, err
		}
	}

	return targets, nil
}

func (s *ReputationServiceImpl) invalidate(ctx context.Context, log *slog.Logger, businessID string) {
	if err := s.cache.Invalidate(ctx, businessID); err != nil {
		log.Warn("failed to invalidate snapshot cache", sl.Err(err))
	}
}
