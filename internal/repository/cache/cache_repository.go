package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nhero-website/internal/domain"
	"github.com/nhero-website/internal/domain/repository"
	apperrors "github.com/nhero-website/internal/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, apperrors.ErrCacheError
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return apperrors.ErrCacheError
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return apperrors.ErrCacheError
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func challengeKey(id string) string {
	return "captcha:" + id
}

// SetChallenge stores a captcha challenge with a TTL.
func (r *cacheRepository) SetChallenge(ctx context.Context, challenge *domain.CaptchaChallenge, ttl time.Duration) error {
	data, err := json.Marshal(challenge)
	if err != nil {
		r.logger.Error("Failed to marshal challenge", zap.Error(err))
		return fmt.Errorf("marshal challenge: %w", err)
	}

	return r.Set(ctx, challengeKey(challenge.ID), data, ttl)
}

// ConsumeChallenge removes a challenge and returns it in one round trip.
// GETDEL keeps the load-and-invalidate step atomic, so concurrent
// submissions carrying the same challenge id cannot both pass.
func (r *cacheRepository) ConsumeChallenge(ctx context.Context, id string) (*domain.CaptchaChallenge, error) {
	data, err := r.client.GetDel(ctx, challengeKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil // Already consumed or expired
	}
	if err != nil {
		r.logger.Error("Failed to consume challenge", zap.String("id", id), zap.Error(err))
		return nil, apperrors.ErrCacheError
	}

	var challenge domain.CaptchaChallenge
	if err := json.Unmarshal(data, &challenge); err != nil {
		r.logger.Error("Failed to unmarshal challenge from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal challenge: %w", err)
	}

	return &challenge, nil
}
