package postgres

import (
	"fmt"
	"log/slog"

	"github.com/YusovID/reputation-engine/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// checkViolation is the postgres SQLSTATE for a failed CHECK constraint.
const checkViolation = "23514"

type Postgres struct {
	db  *sqlx.DB
	log *slog.Logger
}

func NewDB(cfg config.Postgres, log *slog.Logger) (*Postgres, error) {
	db, err := sqlx.Connect("postgres", cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	log.Info("connected to postgres",
		slog.String("host", cfg.Host),
		slog.String("database", cfg.Database),
	)

	return &Postgres{
		db:  db,
		log: log,
	}, nil
}

func (p *Postgres) DB() *sqlx.DB {
	return p.db
}
