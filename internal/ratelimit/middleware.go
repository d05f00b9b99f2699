package ratelimit

import (
	"strconv"

	"vsl-server/internal/apierrors"
	authhandler "vsl-server/internal/auth/handler"
	"vsl-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits authenticated callers. It must run after the JWT
// middleware; requests without a user pass through. Store failures let the
// request through.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authhandler.UserID(c)
		if !ok {
			c.Next()
			return
		}

		ctx := observability.WithFields(c.Request.Context(),
			observability.Field{Key: "rate_limit", Value: s.limit},
		)

		result, err := s.CheckRateLimit(ctx, userID)
		if err != nil {
			s.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "error", Value: err.Error()}), "rate limit check failed, allowing request")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			s.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs}), "rate limit exceeded")
			retryAfter := (result.RetryAfterMs + 999) / 1000
			apierrors.TooManyRequests(c, retryAfter, "Rate limit exceeded. Please try again later.")
			return
		}

		c.Next()
	}
}
