package postgres

import (
	"context"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type PlatformLinkRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewPlatformLinkRepository(db *sqlx.DB, log *slog.Logger) *PlatformLinkRepository {
	return &PlatformLinkRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

type platformLink struct {
	Platform string `db:"platform"`
	URL      string `db:"url"`
}

func (pr *PlatformLinkRepository) GetPlatformLinks(ctx context.Context, businessID string) (map[string]string, error) {
	const op = "internal.repository.postgres.GetPlatformLinks"

	query, args, err := pr.sq.Select("platform", "url").
		From("platform_links").
		Where(sq.Eq{"business_id": businessID}).
		OrderBy("platform").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var rows []platformLink
	if err := pr.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	links := make(map[string]string, len(rows))
	for _, row := range rows {
		links[row.Platform] = row.URL
	}

	return links, nil
}

// UpsertPlatformLink sets the review URL of one platform for a business.
func (pr *PlatformLinkRepository) UpsertPlatformLink(ctx context.Context, businessID, platform, url string) error {
	const op = "internal.repository.postgres.UpsertPlatformLink"

	query, args, err := pr.sq.Insert("platform_links").
		Columns("business_id", "platform", "url").
		Values(businessID, platform, url).
		Suffix("ON CONFLICT (business_id, platform) DO UPDATE SET url = EXCLUDED.url").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	if _, err := pr.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to upsert platform link: %w", op, err)
	}

	pr.log.Info("platform link saved",
		slog.String("op", op),
		slog.String("business_id", businessID),
		slog.String("platform", platform),
	)

	return nil
}
