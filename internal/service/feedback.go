package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/YusovID/reputation-engine/internal/domain"
	"github.com/YusovID/reputation-engine/internal/repository"
	"github.com/YusovID/reputation-engine/internal/reputation"
	"github.com/YusovID/reputation-engine/pkg/logger/sl"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type FeedbackService interface {
	RateExperience(ctx context.Context, customerToken string, rating int) (domain.RoutingDecision, error)
	IssueFeedbackRequest(ctx context.Context, businessID string) (*domain.FeedbackRequest, error)
	SetPlatformLink(ctx context.Context, businessID, platform, url string) error
}

type FeedbackServiceImpl struct {
	BaseService
	feedback repository.FeedbackRepository
	links    repository.PlatformLinkRepository
	audit    repository.AuditPublisher
	now      func() time.Time
}

func NewFeedbackService(
	db Transactor,
	log *slog.Logger,
	feedback repository.FeedbackRepository,
	links repository.PlatformLinkRepository,
	audit repository.AuditPublisher,
) *FeedbackServiceImpl {
	return &FeedbackServiceImpl{
		BaseService: NewBaseService(db, log),
		feedback:    feedback,
		links:       links,
		audit:       audit,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// RateExperience runs the routing gate for a customer's rating. Every
// configured platform link is returned whatever the rating; the decision only
// changes which screen the caller emphasizes.
func (s *FeedbackServiceImpl) RateExperience(ctx context.Context, customerToken string, rating int) (domain.RoutingDecision, error) {
	const op = "internal.service.feedback.RateExperience"

	if err := reputation.ValidateRating(rating); err != nil {
		return domain.RoutingDecision{}, fmt.Errorf("%s: %w", op, err)
	}

	req, err := s.feedback.GetFeedbackRequest(ctx, customerToken)
	if err != nil {
		return domain.RoutingDecision{}, fmt.Errorf("%s: failed to resolve customer token: %w", op, err)
	}

	log := s.log.With(slog.String("op", op), slog.String("business_id", req.BusinessID))

	links, err := s.links.GetPlatformLinks(ctx, req.BusinessID)
	if err != nil {
		return domain.RoutingDecision{}, fmt.Errorf("%s: failed to get platform links: %w", op, err)
	}

	decision, err := reputation.Route(rating, links)
	if err != nil {
		return domain.RoutingDecision{}, fmt.Errorf("%s: %w", op, err)
	}

	shown := decision.ReviewURLs()

	resp := &domain.FeedbackResponse{
		ID:            uuid.NewString(),
		CustomerToken: req.Token,
		BusinessID:    req.BusinessID,
		Rating:        rating,
		Decision:      decision.Decision(),
		LinksShown:    len(shown),
		CreatedAt:     s.now(),
	}

	err = s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		if err := s.feedback.RecordResponse(ctx, tx, resp); err != nil {
			return fmt.Errorf("%s: failed to record response: %w", op, err)
		}

		return nil
	})
	if err != nil {
		return domain.RoutingDecision{}, err
	}

	if err := s.audit.PublishRouting(ctx, resp, shown); err != nil {
		log.Warn("routing audit not delivered", slog.String("response_id", resp.ID), sl.Err(err))
	}

	routingDecisionsTotal.WithLabelValues(string(resp.Decision)).Inc()

	log.Info("experience rated",
		slog.Int("rating", rating),
		slog.String("decision", string(resp.Decision)),
		slog.Int("links_shown", resp.LinksShown),
	)

	return decision, nil
}

// IssueFeedbackRequest creates the customer token a business sends out after a visit.
func (s *FeedbackServiceImpl) IssueFeedbackRequest(ctx context.Context, businessID string) (*domain.FeedbackRequest, error) {
	const op = "internal.service.feedback.IssueFeedbackRequest"

	req := &domain.FeedbackRequest{
		Token:      uuid.NewString(),
		BusinessID: businessID,
		CreatedAt:  s.now(),
	}

	if err := s.feedback.CreateFeedbackRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("%s: failed to create feedback request: %w", op, err)
	}

	s.log.Info("feedback request issued", slog.String("op", op), slog.String("business_id", businessID))

	return req, nil
}

// SetPlatformLink configures where the gate sends customers to review on one platform.
func (s *FeedbackServiceImpl) SetPlatformLink(ctx context.Context, businessID, platform, url string) error {
	const op = "internal.service.feedback.SetPlatformLink"

	if err := s.links.UpsertPlatformLink(ctx, businessID, strings.ToLower(platform), url); err != nil {
		return fmt.Errorf("%s: failed to save platform link: %w", op, err)
	}

	return nil
}
