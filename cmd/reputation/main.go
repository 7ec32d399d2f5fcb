package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/YusovID/reputation-engine/internal/config"
	"github.com/YusovID/reputation-engine/internal/repository"
	"github.com/YusovID/reputation-engine/internal/repository/kafka"
	"github.com/YusovID/reputation-engine/internal/repository/postgres"
	"github.com/YusovID/reputation-engine/internal/repository/redis"
	"github.com/YusovID/reputation-engine/internal/reputation"
	"github.com/YusovID/reputation-engine/internal/service"
	myhttp "github.com/YusovID/reputation-engine/internal/transport/http"
	"github.com/YusovID/reputation-engine/pkg/logger/sl"
	"github.com/YusovID/reputation-engine/pkg/logger/slogpretty"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// An invalid scoring section is fatal: the service never starts serving.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := slogpretty.SetupLogger(cfg.Env)

	log.Info("starting reputation-engine", slog.String("env", cfg.Env))

	db, err := postgres.NewDB(cfg.Postgres, log)
	if err != nil {
		return fmt.Errorf("failed to init db: %w", err)
	}
	defer func() {
		if err := db.DB().Close(); err != nil {
			log.Error("db close failed", sl.Err(err))
		}
	}()

	cache, closeCache, err := setupCache(ctx, cfg.Redis, log)
	if err != nil {
		return err
	}
	defer closeCache()

	audit, closeAudit := setupAudit(cfg.Kafka, log)
	defer closeAudit()

	engine := reputation.New(cfg.GetScoringConfig())

	reviewRepo := postgres.NewReviewRepository(db.DB(), log)
	linkRepo := postgres.NewPlatformLinkRepository(db.DB(), log)
	feedbackRepo := postgres.NewFeedbackRepository(db.DB(), log)

	reputationService := service.NewReputationService(log, engine, reviewRepo, linkRepo, cache)
	feedbackService := service.NewFeedbackService(db.DB(), log, feedbackRepo, linkRepo, audit)

	srv := myhttp.NewServer(log, reputationService, feedbackService)
	httpServer := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:           srv.Routes(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	errChan := make(chan error, 1)

	go startServer(log, httpServer, errChan)

	select {
	case err := <-errChan:
		return fmt.Errorf("http server error: %w", err)

	case <-ctx.Done():
		log.Info("stopping server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down http server: %w", err)
	}

	return nil
}

func setupCache(ctx context.Context, cfg config.Redis, log *slog.Logger) (repository.SnapshotCache, func(), error) {
	if cfg.Addr == "" {
		log.Info("redis address not set, snapshot cache disabled")
		return redis.NoopSnapshotCache{}, func() {}, nil
	}

	client, err := redis.NewClient(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init redis: %w", err)
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Error("redis close failed", sl.Err(err))
		}
	}

	return redis.NewSnapshotCache(client, cfg.SnapshotTTL, log), closeFn, nil
}

func setupAudit(cfg config.Kafka, log *slog.Logger) (repository.AuditPublisher, func()) {
	if len(cfg.Brokers) == 0 {
		log.Info("kafka brokers not set, routing audit stream disabled")
		return kafka.NoopAuditPublisher{}, func() {}
	}

	publisher := kafka.NewAuditPublisher(cfg, log)

	closeFn := func() {
		if err := publisher.Close(); err != nil {
			log.Error("kafka writer close failed", sl.Err(err))
		}
	}

	return publisher, closeFn
}

func startServer(log *slog.Logger, httpServer *http.Server, errChan chan error) {
	defer close(errChan)

	log.Info("service started", slog.String("addr", httpServer.Addr))

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		errChan <- fmt.Errorf("error listening and serving: %w", err)
	}
}
