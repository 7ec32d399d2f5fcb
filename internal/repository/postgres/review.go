package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/YusovID/reputation-engine/internal/apperrors"
	"github.com/YusovID/reputation-engine/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var reviewColumns = []string{"id", "business_id", "rating", "source", "created_at", "replied_at"}

type ReviewRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewReviewRepository(db *sqlx.DB, log *slog.Logger) *ReviewRepository {
	return &ReviewRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (rr *ReviewRepository) ListReviews(ctx context.Context, businessID string) ([]domain.Review, error) {
	const op = "internal.repository.postgres.ListReviews"

	query, args, err := rr.sq.Select(reviewColumns...).
		From("reviews").
		Where(sq.Eq{"business_id": businessID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	reviews := make([]domain.Review, 0)
	if err := rr.db.SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	rr.log.Debug("reviews listed",
		slog.String("op", op),
		slog.String("business_id", businessID),
		slog.Int("count", len(reviews)),
	)

	return reviews, nil
}

func (rr *ReviewRepository) CreateReview(ctx context.Context, review *domain.Review) error {
	const op = "internal.repository.postgres.CreateReview"

	query, args, err := rr.sq.Insert("reviews").
		Columns(reviewColumns...).
		Values(review.ID, review.BusinessID, review.Rating, review.Source, review.CreatedAt, review.RepliedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	if _, err := rr.db.ExecContext(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == checkViolation {
			return &apperrors.InvalidRatingError{Rating: review.Rating}
		}

		return fmt.Errorf("%s: failed to insert review: %w", op, err)
	}

	return nil
}

func (rr *ReviewRepository) MarkReplied(ctx context.Context, reviewID string, repliedAt time.Time) (*domain.Review, error) {
	const op = "internal.repository.postgres.MarkReplied"

	query, args, err := rr.sq.Update("reviews").
		Set("replied_at", repliedAt).
		Where(sq.Eq{"id": reviewID}).
		Suffix("RETURNING id, business_id, rating, source, created_at, replied_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var review domain.Review
	if err := rr.db.QueryRowxContext(ctx, query, args...).StructScan(&review); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: review with id '%s'", op, apperrors.ErrNotFound, reviewID)
		}

		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return &review, nil
}
