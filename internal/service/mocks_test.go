package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/YusovID/reputation-engine/internal/domain"
	"github.com/YusovID/reputation-engine/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

type TransactorMock struct {
	mock.Mock
}

func (m *TransactorMock) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	var tx *sqlx.Tx

	args := m.Called(ctx, opts)
	if args.Get(0) != nil {
		tx = args.Get(0).(*sqlx.Tx)
	}

	return tx, args.Error(1)
}

type ReviewRepositoryMock struct {
	mock.Mock
}

var _ repository.ReviewRepository = (*ReviewRepositoryMock)(nil)

func (m *ReviewRepositoryMock) ListReviews(ctx context.Context, businessID string) ([]domain.Review, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *ReviewRepositoryMock) CreateReview(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *ReviewRepositoryMock) MarkReplied(ctx context.Context, reviewID string, repliedAt time.Time) (*domain.Review, error) {
	args := m.Called(ctx, reviewID, repliedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Review), args.Error(1)
}

type PlatformLinkRepositoryMock struct {
	mock.Mock
}

var _ repository.PlatformLinkRepository = (*PlatformLinkRepositoryMock)(nil)

func (m *PlatformLinkRepositoryMock) GetPlatformLinks(ctx context.Context, businessID string) (map[string]string, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *PlatformLinkRepositoryMock) UpsertPlatformLink(ctx context.Context, businessID, platform, url string) error {
	args := m.Called(ctx, businessID, platform, url)
	return args.Error(0)
}

type FeedbackRepositoryMock struct {
	mock.Mock
}

var _ repository.FeedbackRepository = (*FeedbackRepositoryMock)(nil)

func (m *FeedbackRepositoryMock) GetFeedbackRequest(ctx context.Context, token string) (*domain.FeedbackRequest, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.FeedbackRequest), args.Error(1)
}

func (m *FeedbackRepositoryMock) CreateFeedbackRequest(ctx context.Context, req *domain.FeedbackRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *FeedbackRepositoryMock) RecordResponse(ctx context.Context, tx *sqlx.Tx, resp *domain.FeedbackResponse) error {
	args := m.Called(ctx, tx, resp)
	return args.Error(0)
}

type SnapshotCacheMock struct {
	mock.Mock
}

var _ repository.SnapshotCache = (*SnapshotCacheMock)(nil)

func (m *SnapshotCacheMock) Get(ctx context.Context, businessID string) (*domain.ReputationSnapshot, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.ReputationSnapshot), args.Error(1)
}

func (m *SnapshotCacheMock) Set(ctx context.Context, businessID string, snapshot domain.ReputationSnapshot) error {
	args := m.Called(ctx, businessID, snapshot)
	return args.Error(0)
}

func (m *SnapshotCacheMock) Invalidate(ctx context.Context, businessID string) error {
	args := m.Called(ctx, businessID)
	return args.Error(0)
}

type AuditPublisherMock struct {
	mock.Mock
}

var _ repository.AuditPublisher = (*AuditPublisherMock)(nil)

func (m *AuditPublisherMock) PublishRouting(ctx context.Context, resp *domain.FeedbackResponse, reviewURLs map[string]string) error {
	args := m.Called(ctx, resp, reviewURLs)
	return args.Error(0)
}
