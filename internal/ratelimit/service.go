package ratelimit

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"vsl-server/internal/observability"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const window = time.Minute

// WindowStore is the sorted-set subset of Redis the limiter needs
type WindowStore interface {
	ZRemRangeByScore(ctx context.Context, key, min, max string) error
	ZCard(ctx context.Context, key string) (int64, error)
	ZRangeWithScores(ctx context.Context, key string, start, stop int64) ([]redis.Z, error)
	ZAdd(ctx context.Context, key string, members ...redis.Z) error
	Expire(ctx context.Context, key string, expiration time.Duration) error
}

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service limits generation requests per user over a sliding one-minute window
type Service struct {
	store  WindowStore
	limit  int
	logger *observability.Logger
	now    func() time.Time
}

// NewService creates a rate limiter. A nil store disables limiting.
func NewService(store WindowStore, limit int, logger *observability.Logger) *Service {
	return &Service{
		store:  store,
		limit:  limit,
		logger: logger,
		now:    time.Now,
	}
}

func key(userID uuid.UUID) string {
	return "rl:gen:" + userID.String()
}

// CheckRateLimit records one request for userID if it fits in the window.
// Without a store every request is allowed.
func (s *Service) CheckRateLimit(ctx context.Context, userID uuid.UUID) (RateLimitResult, error) {
	now := s.now()
	if s.store == nil || s.limit <= 0 {
		return RateLimitResult{Allowed: true, Limit: s.limit, Remaining: s.limit, ResetAt: now.Add(window)}, nil
	}

	k := key(userID)
	nowMs := now.UnixMilli()
	windowStartMs := now.Add(-window).UnixMilli()

	if err := s.store.ZRemRangeByScore(ctx, k, "0", strconv.FormatInt(windowStartMs, 10)); err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to remove old entries: %w", err)
	}

	count, err := s.store.ZCard(ctx, k)
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= s.limit {
		resetAt := now.Add(window)
		oldest, err := s.store.ZRangeWithScores(ctx, k, 0, 0)
		if err == nil && len(oldest) > 0 {
			resetAt = time.UnixMilli(int64(oldest[0].Score)).Add(window)
		}
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return RateLimitResult{
			Allowed:      false,
			Limit:        s.limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	// members must be unique, two requests can share a millisecond
	member := fmt.Sprintf("%d-%s", nowMs, uuid.NewString())
	if err := s.store.ZAdd(ctx, k, redis.Z{Score: float64(nowMs), Member: member}); err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to add request: %w", err)
	}

	if err := s.store.Expire(ctx, k, 2*window); err != nil {
		s.logger.InfoWithError(ctx, "failed to set expiration on rate limit key", err)
	}

	return RateLimitResult{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(window),
	}, nil
}
