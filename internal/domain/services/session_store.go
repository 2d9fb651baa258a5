package services

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"room-manager/internal/infrastructure/config"
)

const sessionKeyPrefix = "session:"

// InterfaceSessionStore keeps the ids of live sessions so they can be revoked
type InterfaceSessionStore interface {
	Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Revoke(ctx context.Context, sessionID string) error
}

// RedisSessionStore stores session ids in Redis with the session lifetime as TTL
type RedisSessionStore struct {
	Client *redis.Client
}

// NewRedisClient creates a Redis client from the configuration
func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// NewRedisSessionStore creates a session store on top of client
func NewRedisSessionStore(client *redis.Client) InterfaceSessionStore {
	return &RedisSessionStore{Client: client}
}

// 1 Save records a session for ttl
func (s *RedisSessionStore) Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	return s.Client.Set(ctx, sessionKeyPrefix+sessionID, userID, ttl).Err()
}

// 2 Exists reports whether the session is still live
func (s *RedisSessionStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	_, err := s.Client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// 3 Revoke deletes the session
func (s *RedisSessionStore) Revoke(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
