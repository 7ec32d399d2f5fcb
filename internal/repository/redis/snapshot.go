package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/YusovID/reputation-engine/internal/config"
	"github.com/YusovID/reputation-engine/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "reputation:snapshot:"

// NewClient opens a client for the snapshot cache and checks it is reachable.
func NewClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	const op = "internal.repository.redis.NewClient"

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: failed to ping redis at '%s': %w", op, cfg.Addr, err)
	}

	return client, nil
}

// SnapshotCache keeps computed reputation snapshots in Redis for a fixed TTL.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

func NewSnapshotCache(client *redis.Client, ttl time.Duration, log *slog.Logger) *SnapshotCache {
	return &SnapshotCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// Get returns (nil, nil) on a cache miss.
func (c *SnapshotCache) Get(ctx context.Context, businessID string) (*domain.ReputationSnapshot, error) {
	const op = "internal.repository.redis.SnapshotCache.Get"

	data, err := c.client.Get(ctx, keyPrefix+businessID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, fmt.Errorf("%s: redis get snapshot: %w", op, err)
	}

	var snapshot domain.ReputationSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%s: unmarshal snapshot: %w", op, err)
	}

	return &snapshot, nil
}

func (c *SnapshotCache) Set(ctx context.Context, businessID string, snapshot domain.ReputationSnapshot) error {
	const op = "internal.repository.redis.SnapshotCache.Set"

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("%s: marshal snapshot: %w", op, err)
	}

	if err := c.client.Set(ctx, keyPrefix+businessID, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%s: redis set snapshot: %w", op, err)
	}

	c.log.Debug("snapshot cached",
		slog.String("op", op),
		slog.String("business_id", businessID),
		slog.Duration("ttl", c.ttl),
	)

	return nil
}

func (c *SnapshotCache) Invalidate(ctx context.Context, businessID string) error {
	const op = "internal.repository.redis.SnapshotCache.Invalidate"

	if err := c.client.Del(ctx, keyPrefix+businessID).Err(); err != nil {
		return fmt.Errorf("%s: redis del snapshot: %w", op, err)
	}

	return nil
}

// NoopSnapshotCache is used when no Redis address is configured. Every Get is a miss.
type NoopSnapshotCache struct{}

func (NoopSnapshotCache) Get(context.Context, string) (*domain.ReputationSnapshot, error) {
	return nil, nil
}

func (NoopSnapshotCache) Set(context.Context, string, domain.ReputationSnapshot) error { return nil }

func (NoopSnapshotCache) Invalidate(context.Context, string) error { return nil }
