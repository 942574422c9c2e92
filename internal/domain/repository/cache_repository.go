package repository

import (
	"context"
	"time"

	"github.com/nhero-website/internal/domain"
)

// CacheRepository backs the content revalidation window and the captcha
// challenge store.
type CacheRepository interface {
	// Get returns nil on a cache miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// SetChallenge stores a captcha challenge with a TTL.
	SetChallenge(ctx context.Context, challenge *domain.CaptchaChallenge, ttl time.Duration) error

	// ConsumeChallenge atomically loads and removes a challenge, nil on
	// miss. Atomicity is what makes answers single-use under concurrent
	// submissions.
	ConsumeChallenge(ctx context.Context, id string) (*domain.CaptchaChallenge, error)
}
