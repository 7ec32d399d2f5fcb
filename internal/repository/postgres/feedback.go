package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/YusovID/reputation-engine/internal/apperrors"
	"github.com/YusovID/reputation-engine/internal/domain"
	"github.com/jmoiron/sqlx"
)

type FeedbackRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewFeedbackRepository(db *sqlx.DB, log *slog.Logger) *FeedbackRepository {
	return &FeedbackRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (fr *FeedbackRepository) GetFeedbackRequest(ctx context.Context, token string) (*domain.FeedbackRequest, error) {
	const op = "internal.repository.postgres.GetFeedbackRequest"

	query, args, err := fr.sq.Select("token", "business_id", "created_at", "rated_at").
		From("feedback_requests").
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var req domain.FeedbackRequest
	if err := fr.db.GetContext(ctx, &req, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: feedback request '%s'", op, apperrors.ErrNotFound, token)
		}

		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return &req, nil
}

// CreateFeedbackRequest issues a new public feedback token for a business.
func (fr *FeedbackRepository) CreateFeedbackRequest(ctx context.Context, req *domain.FeedbackRequest) error {
	const op = "internal.repository.postgres.CreateFeedbackRequest"

	query, args, err := fr.sq.Insert("feedback_requests").
		Columns("token", "business_id", "created_at").
		Values(req.Token, req.BusinessID, req.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	if _, err := fr.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to insert feedback request: %w", op, err)
	}

	return nil
}

func (fr *FeedbackRepository) RecordResponse(ctx context.Context, tx *sqlx.Tx, resp *domain.FeedbackResponse) error {
	const op = "internal.repository.postgres.RecordResponse"

	insert, args, err := fr.sq.Insert("feedback_responses").
		Columns("id", "customer_token", "business_id", "rating", "decision", "links_shown", "created_at").
		Values(resp.ID, resp.CustomerToken, resp.BusinessID, resp.Rating, resp.Decision, resp.LinksShown, resp.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
		return fmt.Errorf("%s: failed to insert feedback response: %w", op, err)
	}

	update, args, err := fr.sq.Update("feedback_requests").
		Set("rated_at", resp.CreatedAt).
		Where(sq.Eq{"token": resp.CustomerToken}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, update, args...); err != nil {
		return fmt.Errorf("%s: failed to stamp feedback request: %w", op, err)
	}

	fr.log.Info("feedback response recorded",
		slog.String("op", op),
		slog.String("business_id", resp.BusinessID),
		slog.String("decision", string(resp.Decision)),
	)

	return nil
}
