// Package store keeps fetched results for the lifetime of a browser session.
// Every backend expires entries after the configured TTL.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"comment-service/config"
	"comment-service/metrics"
	"comment-service/model"
)

var ErrNotFound = errors.New("session not found or expired")

// ErrExpired is returned by Save for a session whose expiry has already passed.
var ErrExpired = errors.New("session already expired")

type Store interface {
	Save(ctx context.Context, s model.Session) error
	Get(ctx context.Context, id string) (model.Session, error)
	Close(ctx context.Context) error
}

// New builds the backend named by cfg.SessionStore.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.SessionStore {
	case "", "memory":
		return NewMemory(cfg.SessionTTL), nil
	case "mongo":
		return NewMongo(ctx, cfg.MongoURI, cfg.MongoDB, cfg.SessionTTL)
	case "redis":
		return NewRedis(ctx, cfg.RedisURL, cfg.SessionTTL)
	default:
		return nil, fmt.Errorf("unknown SESSION_STORE: %s (use 'memory', 'mongo', or 'redis')", cfg.SessionStore)
	}
}

func observe(operation, backend string, err error) {
	status := "success"
	switch {
	case errors.Is(err, ErrNotFound):
		status = "miss"
	case err != nil:
		status = "error"
	}
	metrics.SessionOperationsTotal.WithLabelValues(operation, backend, status).Inc()
}

func expiresAt(s model.Session, ttl time.Duration) time.Time {
	if !s.ExpiresAt.IsZero() {
		return s.ExpiresAt
	}
	return time.Now().Add(ttl)
}
