package http

import (
	"context"

	"github.com/YusovID/reputation-engine/internal/domain"
	"github.com/YusovID/reputation-engine/internal/service"
	"github.com/stretchr/testify/mock"
)

type ReputationServiceMock struct {
	mock.Mock
}

var _ service.ReputationService = (*ReputationServiceMock)(nil)

func (m *ReputationServiceMock) GetSnapshot(ctx context.Context, businessID string) (*domain.ReputationSnapshot, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.ReputationSnapshot), args.Error(1)
}

func (m *ReputationServiceMock) GetGoals(ctx context.Context, businessID string, targets []float64) ([]domain.RatingGoal, error) {
	args := m.Called(ctx, businessID, targets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.RatingGoal), args.Error(1)
}

func (m *ReputationServiceMock) GetDashboard(ctx context.Context, businessID string, targets []float64) (*domain.Dashboard, error) {
	args := m.Called(ctx, businessID, targets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

func (m *ReputationServiceMock) AddReview(ctx context.Context, review service.NewReview) (*domain.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *ReputationServiceMock) ReplyToReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Review), args.Error(1)
}

type FeedbackServiceMock struct {
	mock.Mock
}

var _ service.FeedbackService = (*FeedbackServiceMock)(nil)

func (m *FeedbackServiceMock) RateExperience(ctx context.Context, customerToken string, rating int) (domain.RoutingDecision, error) {
	args := m.Called(ctx, customerToken, rating)
	return args.Get(0).(domain.RoutingDecision), args.Error(1)
}

func (m *FeedbackServiceMock) IssueFeedbackRequest(ctx context.Context, businessID string) (*domain.FeedbackRequest, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.FeedbackRequest), args.Error(1)
}

func (m *FeedbackServiceMock) SetPlatformLink(ctx context.Context, businessID, platform, url string) error {
	args := m.Called(ctx, businessID, platform, url)
	return args.Error(0)
}
