package postgres

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/YusovID/reputation-engine/internal/apperrors"
	"github.com/YusovID/reputation-engine/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, smock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), smock
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestReviewRepository_ListReviews(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	replied := created.Add(24 * time.Hour)

	testCases := []struct {
		name        string
		setupMock   func(smock sqlmock.Sqlmock)
		expected    []domain.Review
		expectedErr bool
	}{
		{
			name: "Success",
			setupMock: func(smock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(reviewColumns).
					AddRow("r-1", "b-1", 5, "GOOGLE", created, nil).
					AddRow("r-2", "b-1", 2, "DIRECT", created, replied)
				smock.ExpectQuery(`SELECT (.+) FROM reviews WHERE business_id = \$1 ORDER BY created_at, id`).
					WithArgs("b-1").
					WillReturnRows(rows)
			},
			expected: []domain.Review{
				{ID: "r-1", BusinessID: "b-1", Rating: 5, Source: domain.SourceGoogle, CreatedAt: created},
				{ID: "r-2", BusinessID: "b-1", Rating: 2, Source: domain.SourceDirect, CreatedAt: created, RepliedAt: &replied},
			},
		},
		{
			name: "No reviews yields an empty slice",
			setupMock: func(smock sqlmock.Sqlmock) {
				smock.ExpectQuery(`SELECT (.+) FROM reviews`).
					WithArgs("b-1").
					WillReturnRows(sqlmock.NewRows(reviewColumns))
			},
			expected: []domain.Review{},
		},
		{
			name: "Database error",
			setupMock: func(smock sqlmock.Sqlmock) {
				smock.ExpectQuery(`SELECT (.+) FROM reviews`).
					WithArgs("b-1").
					WillReturnError(errors.New("connection reset"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, smock := newMockDB(t)
			tc.setupMock(smock)

			repo := NewReviewRepository(db, discardLogger())

			reviews, err := repo.ListReviews(ctx, "b-1")
			if tc.expectedErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, reviews)
			}

			assert.NoError(t, smock.ExpectationsWereMet())
		})
	}
}

func TestReviewRepository_CreateReview(t *testing.T) {
	ctx := context.Background()
	review := &domain.Review{
		ID:         "r-1",
		BusinessID: "b-1",
		Rating:     4,
		Source:     domain.SourceFacebook,
		CreatedAt:  time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("Success", func(t *testing.T) {
		db, smock := newMockDB(t)
		smock.ExpectExec(`INSERT INTO reviews \(id,business_id,rating,source,created_at,replied_at\)`).
			WithArgs("r-1", "b-1", 4, domain.SourceFacebook, review.CreatedAt, review.RepliedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewReviewRepository(db, discardLogger()).CreateReview(ctx, review)
		require.NoError(t, err)
		assert.NoError(t, smock.ExpectationsWereMet())
	})

	t.Run("Check violation maps to invalid rating", func(t *testing.T) {
		db, smock := newMockDB(t)
		smock.ExpectExec(`INSERT INTO reviews`).
			WillReturnError(&pq.Error{Code: checkViolation})

		err := NewReviewRepository(db, discardLogger()).CreateReview(ctx, review)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRating)
	})
}

func TestReviewRepository_MarkReplied(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	replied := created.Add(time.Hour)

	t.Run("Success", func(t *testing.T) {
		db, smock := newMockDB(t)
		smock.ExpectQuery(`UPDATE reviews SET replied_at = \$1 WHERE id = \$2 RETURNING`).
			WithArgs(replied, "r-1").
			WillReturnRows(sqlmock.NewRows(reviewColumns).AddRow("r-1", "b-1", 2, "GOOGLE", created, replied))

		review, err := NewReviewRepository(db, discardLogger()).MarkReplied(ctx, "r-1", replied)
		require.NoError(t, err)
		assert.Equal(t, "b-1", review.BusinessID)
		require.NotNil(t, review.RepliedAt)
		assert.Equal(t, replied, *review.RepliedAt)
	})

	t.Run("Not found", func(t *testing.T) {
		db, smock := newMockDB(t)
		smock.ExpectQuery(`UPDATE reviews`).
			WithArgs(replied, "missing").
			WillReturnRows(sqlmock.NewRows(reviewColumns))

		_, err := NewReviewRepository(db, discardLogger()).MarkReplied(ctx, "missing", replied)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestPlatformLinkRepository_GetPlatformLinks(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, smock := newMockDB(t)
		smock.ExpectQuery(`SELECT platform, url FROM platform_links WHERE business_id = \$1`).
			WithArgs("b-1").
			WillReturnRows(sqlmock.NewRows([]string{"platform", "url"}).
				AddRow("facebook", "https://fb.com/b-1").
				AddRow("google", "https://g.page/b-1"))

		links, err := NewPlatformLinkRepository(db, discardLogger()).GetPlatformLinks(ctx, "b-1")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"facebook": "https://fb.com/b-1",
			"google":   "https://g.page/b-1",
		}, links)
	})

	t.Run("No links yields an empty map", func(t *testing.T) {
		db, smock := newMockDB(t)
		smock.ExpectQuery(`SELECT platform, url FROM platform_links`).
			WithArgs("b-2").
			WillReturnRows(sqlmock.NewRows([]string{"platform", "url"}))

		links, err := NewPlatformLinkRepository(db, discardLogger()).GetPlatformLinks(ctx, "b-2")
		require.NoError(t, err)
		assert.NotNil(t, links)
		assert.Empty(t, links)
	})
}

func TestFeedbackRepository_GetFeedbackRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("Not found", func(t *testing.T) {
		db, smock := newMockDB(t)
		smock.ExpectQuery(`SELECT token, business_id, created_at, rated_at FROM feedback_requests WHERE token = \$1`).
			WithArgs("tok").
			WillReturnRows(sqlmock.NewRows([]string{"token", "business_id", "created_at", "rated_at"}))

		_, err := NewFeedbackRepository(db, discardLogger()).GetFeedbackRequest(ctx, "tok")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestFeedbackRepository_RecordResponse(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	resp := &domain.FeedbackResponse{
		ID:            "fr-1",
		CustomerToken: "tok",
		BusinessID:    "b-1",
		Rating:        2,
		Decision:      domain.RoutingPrivateFeedback,
		LinksShown:    2,
		CreatedAt:     now,
	}

	db, smock := newMockDB(t)
	smock.ExpectBegin()
	smock.ExpectExec(`INSERT INTO feedback_responses`).
		WithArgs("fr-1", "tok", "b-1", 2, domain.RoutingPrivateFeedback, 2, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectExec(`UPDATE feedback_requests SET rated_at = \$1 WHERE token = \$2`).
		WithArgs(now, "tok").
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	require.NoError(t, NewFeedbackRepository(db, discardLogger()).RecordResponse(ctx, tx, resp))
	require.NoError(t, tx.Commit())
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestPlatformLinkRepository_UpsertPlatformLink(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, smock := newMockDB(t)
		smock.ExpectExec(`INSERT INTO platform_links (.+) ON CONFLICT \(business_id, platform\) DO UPDATE SET url = EXCLUDED.url`).
			WithArgs("b-1", "google", "https://g.page/b-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewPlatformLinkRepository(db, discardLogger()).UpsertPlatformLink(ctx, "b-1", "google", "https://g.page/b-1")
		require.NoError(t, err)
		assert.NoError(t, smock.ExpectationsWereMet())
	})

	t.Run("Exec failure", func(t *testing.T) {
		db, smock := newMockDB(t)
		smock.ExpectExec(`INSERT INTO platform_links`).WillReturnError(errors.New("db down"))

		err := NewPlatformLinkRepository(db, discardLogger()).UpsertPlatformLink(ctx, "b-1", "google", "https://g.page/b-1")
		require.Error(t, err)
	})
}

func TestFeedbackRepository_CreateFeedbackRequest(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	db, smock := newMockDB(t)
	smock.ExpectExec(`INSERT INTO feedback_requests \(token,business_id,created_at\) VALUES \(\$1,\$2,\$3\)`).
		WithArgs("tok-1", "b-1", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewFeedbackRepository(db, discardLogger()).CreateFeedbackRequest(ctx, &domain.FeedbackRequest{
		Token: "tok-1", BusinessID: "b-1", CreatedAt: now,
	})
	require.NoError(t, err)
	assert.NoError(t, smock.ExpectationsWereMet())
}
