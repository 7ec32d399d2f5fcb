package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/YusovID/reputation-engine/internal/apperrors"
	"github.com/YusovID/reputation-engine/internal/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type feedbackMocks struct {
	transactor *TransactorMock
	feedback   *FeedbackRepositoryMock
	links      *PlatformLinkRepositoryMock
	audit      *AuditPublisherMock
}

func newFeedbackService() (*FeedbackServiceImpl, feedbackMocks) {
	m := feedbackMocks{
		transactor: new(TransactorMock),
		feedback:   new(FeedbackRepositoryMock),
		links:      new(PlatformLinkRepositoryMock),
		audit:      new(AuditPublisherMock),
	}

	s := NewFeedbackService(m.transactor, discardLogger(), m.feedback, m.links, m.audit)
	s.now = func() time.Time { return testNow }

	return s, m
}

func (m feedbackMocks) assertExpectations(t *testing.T) {
	m.transactor.AssertExpectations(t)
	m.feedback.AssertExpectations(t)
	m.links.AssertExpectations(t)
	m.audit.AssertExpectations(t)
}

func TestFeedbackServiceImpl_RateExperience(t *testing.T) {
	ctx := context.Background()
	req := &domain.FeedbackRequest{Token: "tok-1", BusinessID: "b-1", CreatedAt: testNow.Add(-time.Hour)}
	links := map[string]string{"google": "https://g.page/b-1", "facebook": "https://fb.com/b-1"}

	testCases := []struct {
		name             string
		rating           int
		setupMocks       func(t *testing.T, m feedbackMocks)
		expectedDecision domain.Routing
		expectedLinks    map[string]string
		expectedError    bool
		expectedErrIs    error
	}{
		{
			name:   "High rating emphasizes public reviews",
			rating: 5,
			setupMocks: func(t *testing.T, m feedbackMocks) {
				_, mockedTx, smock := newMockDBAndTx(t)
				smock.ExpectCommit()

				m.feedback.On("GetFeedbackRequest", ctx, "tok-1").Return(req, nil).Once()
				m.links.On("GetPlatformLinks", ctx, "b-1").Return(links, nil).Once()
				m.transactor.On("BeginTxx", mock.Anything, (*sql.TxOptions)(nil)).Return(mockedTx, nil).Once()
				m.feedback.On("RecordResponse", ctx, mockedTx, mock.MatchedBy(func(r *domain.FeedbackResponse) bool {
					return r.Decision == domain.RoutingPublicReviews && r.LinksShown == 2 && r.Rating == 5 && r.CreatedAt.Equal(testNow)
				})).Return(nil).Once()
				m.audit.On("PublishRouting", ctx, mock.AnythingOfType("*domain.FeedbackResponse"), links).Return(nil).Once()
			},
			expectedDecision: domain.RoutingPublicReviews,
			expectedLinks:    links,
		},
		{
			name:   "Low rating still returns every platform link",
			rating: 1,
			setupMocks: func(t *testing.T, m feedbackMocks) {
				_, mockedTx, smock := newMockDBAndTx(t)
				smock.ExpectCommit()

				m.feedback.On("GetFeedbackRequest", ctx, "tok-1").Return(req, nil).Once()
				m.links.On("GetPlatformLinks", ctx, "b-1").Return(links, nil).Once()
				m.transactor.On("BeginTxx", mock.Anything, (*sql.TxOptions)(nil)).Return(mockedTx, nil).Once()
				m.feedback.On("RecordResponse", ctx, mockedTx, mock.MatchedBy(func(r *domain.FeedbackResponse) bool {
					return r.Decision == domain.RoutingPrivateFeedback && r.LinksShown == 2
				})).Return(nil).Once()
				m.audit.On("PublishRouting", ctx, mock.Anything, links).Return(nil).Once()
			},
			expectedDecision: domain.RoutingPrivateFeedback,
			expectedLinks:    links,
		},
		{
			name:   "Audit failure does not fail the request",
			rating: 4,
			setupMocks: func(t *testing.T, m feedbackMocks) {
				_, mockedTx, smock := newMockDBAndTx(t)
				smock.ExpectCommit()

				m.feedback.On("GetFeedbackRequest", ctx, "tok-1").Return(req, nil).Once()
				m.links.On("GetPlatformLinks", ctx, "b-1").Return(map[string]string{}, nil).Once()
				m.transactor.On("BeginTxx", mock.Anything, (*sql.TxOptions)(nil)).Return(mockedTx, nil).Once()
				m.feedback.On("RecordResponse", ctx, mockedTx, mock.Anything).Return(nil).Once()
				m.audit.On("PublishRouting", ctx, mock.Anything, map[string]string{}).Return(errors.New("broker down")).Once()
			},
			expectedDecision: domain.RoutingPublicReviews,
			expectedLinks:    map[string]string{},
		},
		{
			name:          "Rating out of range is rejected before any lookup",
			rating:        0,
			setupMocks:    func(t *testing.T, m feedbackMocks) {},
			expectedError: true,
			expectedErrIs: apperrors.ErrInvalidRating,
		},
		{
			name:   "Unknown customer token",
			rating: 3,
			setupMocks: func(t *testing.T, m feedbackMocks) {
				m.feedback.On("GetFeedbackRequest", ctx, "tok-1").Return(nil, apperrors.ErrNotFound).Once()
			},
			expectedError: true,
			expectedErrIs: apperrors.ErrNotFound,
		},
		{
			name:   "Failure on BeginTxx",
			rating: 3,
			setupMocks: func(t *testing.T, m feedbackMocks) {
				m.feedback.On("GetFeedbackRequest", ctx, "tok-1").Return(req, nil).Once()
				m.links.On("GetPlatformLinks", ctx, "b-1").Return(links, nil).Once()
				m.transactor.On("BeginTxx", mock.Anything, (*sql.TxOptions)(nil)).Return(nil, errors.New("cannot begin tx")).Once()
			},
			expectedError: true,
		},
		{
			name:   "Failure on RecordResponse rolls back and skips the audit",
			rating: 2,
			setupMocks: func(t *testing.T, m feedbackMocks) {
				_, mockedTx, smock := newMockDBAndTx(t)
				smock.ExpectRollback()

				m.feedback.On("GetFeedbackRequest", ctx, "tok-1").Return(req, nil).Once()
				m.links.On("GetPlatformLinks", ctx, "b-1").Return(links, nil).Once()
				m.transactor.On("BeginTxx", mock.Anything, (*sql.TxOptions)(nil)).Return(mockedTx, nil).Once()
				m.feedback.On("RecordResponse", ctx, mockedTx, mock.Anything).Return(errors.New("insert failed")).Once()
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newFeedbackService()
			tc.setupMocks(t, m)

			decision, err := s.RateExperience(ctx, "tok-1", tc.rating)
			if tc.expectedError {
				require.Error(t, err)
				if tc.expectedErrIs != nil {
					assert.ErrorIs(t, err, tc.expectedErrIs)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedDecision, decision.Decision())
				assert.Equal(t, tc.expectedLinks, decision.ReviewURLs())
			}

			m.assertExpectations(t)
		})
	}
}

func TestFeedbackServiceImpl_RateExperience_CountsDecisions(t *testing.T) {
	ctx := context.Background()
	counter := routingDecisionsTotal.WithLabelValues(string(domain.RoutingPrivateFeedback))
	before := testutil.ToFloat64(counter)

	s, m := newFeedbackService()
	_, mockedTx, smock := newMockDBAndTx(t)
	smock.ExpectCommit()

	m.feedback.On("GetFeedbackRequest", ctx, "tok-1").
		Return(&domain.FeedbackRequest{Token: "tok-1", BusinessID: "b-1"}, nil).Once()
	m.links.On("GetPlatformLinks", ctx, "b-1").Return(map[string]string{}, nil).Once()
	m.transactor.On("BeginTxx", mock.Anything, (*sql.TxOptions)(nil)).Return(mockedTx, nil).Once()
	m.feedback.On("RecordResponse", ctx, mockedTx, mock.Anything).Return(nil).Once()
	m.audit.On("PublishRouting", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	_, err := s.RateExperience(ctx, "tok-1", 3)
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestFeedbackServiceImpl_IssueFeedbackRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		s, m := newFeedbackService()
		m.feedback.On("CreateFeedbackRequest", ctx, mock.MatchedBy(func(r *domain.FeedbackRequest) bool {
			return r.Token != "" && r.BusinessID == "b-1" && r.CreatedAt.Equal(testNow) && r.RatedAt == nil
		})).Return(nil).Once()

		req, err := s.IssueFeedbackRequest(ctx, "b-1")
		require.NoError(t, err)
		assert.Equal(t, "b-1", req.BusinessID)
		assert.NotEmpty(t, req.Token)
		m.assertExpectations(t)
	})

	t.Run("Tokens are unique", func(t *testing.T) {
		s, m := newFeedbackService()
		m.feedback.On("CreateFeedbackRequest", ctx, mock.Anything).Return(nil).Twice()

		first, err := s.IssueFeedbackRequest(ctx, "b-1")
		require.NoError(t, err)
		second, err := s.IssueFeedbackRequest(ctx, "b-1")
		require.NoError(t, err)

		assert.NotEqual(t, first.Token, second.Token)
		m.assertExpectations(t)
	})

	t.Run("Store failure", func(t *testing.T) {
		s, m := newFeedbackService()
		m.feedback.On("CreateFeedbackRequest", ctx, mock.Anything).Return(errors.New("insert failed")).Once()

		req, err := s.IssueFeedbackRequest(ctx, "b-1")
		require.Error(t, err)
		assert.Nil(t, req)
		m.assertExpectations(t)
	})
}

func TestFeedbackServiceImpl_SetPlatformLink(t *testing.T) {
	ctx := context.Background()

	t.Run("Platform name is lowercased", func(t *testing.T) {
		s, m := newFeedbackService()
		m.links.On("UpsertPlatformLink", ctx, "b-1", "google", "https://g.page/b-1").Return(nil).Once()

		err := s.SetPlatformLink(ctx, "b-1", "Google", "https://g.page/b-1")
		require.NoError(t, err)
		m.assertExpectations(t)
	})

	t.Run("Store failure", func(t *testing.T) {
		s, m := newFeedbackService()
		m.links.On("UpsertPlatformLink", ctx, "b-1", "yelp", "https://yelp.com/b-1").Return(errors.New("db down")).Once()

		err := s.SetPlatformLink(ctx, "b-1", "yelp", "https://yelp.com/b-1")
		require.Error(t, err)
		m.assertExpectations(t)
	})
}
