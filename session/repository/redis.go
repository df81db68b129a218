package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/kuppi-app/kuppi-go/internal/pkg/apierrors"
	"github.com/kuppi-app/kuppi-go/internal/pkg/models"
)

// RedisStore keeps the session token under one redis key per profile. It
// serves hosted deployments of the client where no local filesystem slot
// exists.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a redis-backed token store and verifies the
// connection.
func NewRedisStore(config models.RedisConfig, profile string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
		PoolSize: config.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{
		client: client,
		key:    sessionKey(profile),
	}, nil
}

func sessionKey(profile string) string {
	if profile == "" {
		profile = "default"
	}
	return fmt.Sprintf("kuppi:session:%s:token", profile)
}

// Get returns the stored token, or empty string when the key is absent.
func (s *RedisStore) Get(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", apierrors.Wrap(apierrors.KindStorage, storeOp, "",
			fmt.Errorf("failed to read session key: %w", err))
	}
	return token, nil
}

// Set durably replaces the stored token. The key carries no TTL; token
// lifetime is the server's concern.
func (s *RedisStore) Set(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, 0).Err(); err != nil {
		return apierrors.Wrap(apierrors.KindStorage, storeOp, "",
			fmt.Errorf("failed to write session key: %w", err))
	}
	return nil
}

// Clear removes the stored token. A missing key is a no-op.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return apierrors.Wrap(apierrors.KindStorage, storeOp, "",
			fmt.Errorf("failed to delete session key: %w", err))
	}
	return nil
}

// Close closes the underlying redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
