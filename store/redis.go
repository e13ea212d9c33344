package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"comment-service/model"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "comments:session:"

type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(ctx context.Context, redisURL string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis unreachable: %w", err)
	}

	log.Printf("[INFO] Connected to Redis session store at %s", opts.Addr)
	return &Redis{rdb: rdb, ttl: ttl}, nil
}

func (r *Redis) Save(ctx context.Context, s model.Session) error {
	s.ExpiresAt = expiresAt(s, r.ttl)
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		observe("save", "redis", ErrExpired)
		return ErrExpired
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	err = r.rdb.Set(ctx, redisKeyPrefix+s.ID, data, ttl).Err()
	observe("save", "redis", err)
	return err
}

func (r *Redis) Get(ctx context.Context, id string) (model.Session, error) {
	data, err := r.rdb.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		err = ErrNotFound
	}
	observe("get", "redis", err)
	if err != nil {
		return model.Session{}, err
	}

	var s model.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return model.Session{}, fmt.Errorf("corrupt session %s: %w", id, err)
	}
	return s, nil
}

func (r *Redis) Close(ctx context.Context) error {
	return r.rdb.Close()
}
