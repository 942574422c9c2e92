package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nhero-website/internal/domain"
	"github.com/nhero-website/internal/domain/repository"
	"github.com/nhero-website/internal/usecase/dto"
)

// CaptchaUsecase issues and verifies the arithmetic challenges guarding
// the contact form. Challenges are single use: the stored answer is
// deleted on the first verification attempt, so reopening the form or
// replaying an old answer always fails.
type CaptchaUsecase struct {
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	ttl       time.Duration
}

func NewCaptchaUsecase(cacheRepo repository.CacheRepository, logger *zap.Logger, ttl time.Duration) *CaptchaUsecase {
	return &CaptchaUsecase{
		cacheRepo: cacheRepo,
		logger:    logger,
		ttl:       ttl,
	}
}

// Generate draws two integers in [1,10] and stores their sum under a
// fresh challenge id.
func (uc *CaptchaUsecase) Generate(ctx context.Context) (*dto.CaptchaResponse, error) {
	a := rand.Intn(10) + 1
	b := rand.Intn(10) + 1

	challenge := &domain.CaptchaChallenge{
		ID:       uuid.NewString(),
		Question: fmt.Sprintf("%d + %d", a, b),
		Answer:   a + b,
	}

	if err := uc.cacheRepo.SetChallenge(ctx, challenge, uc.ttl); err != nil {
		uc.logger.Error("Failed to store captcha challenge", zap.Error(err))
		return nil, err
	}

	return &dto.CaptchaResponse{
		ChallengeID: challenge.ID,
		Question:    challenge.Question,
	}, nil
}

// Verify consumes the challenge and reports whether answer matches.
// Unknown, expired and already-consumed challenges all fail the same
// way. The consume is atomic, so only one of several concurrent
// attempts on the same id ever sees the challenge.
func (uc *CaptchaUsecase) Verify(ctx context.Context, id string, answer int) bool {
	if id == "" {
		return false
	}

	challenge, err := uc.cacheRepo.ConsumeChallenge(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to consume captcha challenge", zap.String("id", id), zap.Error(err))
		return false
	}
	if challenge == nil {
		return false
	}

	return challenge.Answer == answer
}
