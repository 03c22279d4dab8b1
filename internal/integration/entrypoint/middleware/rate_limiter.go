// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/password-feedback/internal/application/adapter"
	domainerror "github.com/finance-tracker/password-feedback/internal/domain/error"
)

const (
	// defaultMaxAttempts is the default number of allowed evaluations per window.
	defaultMaxAttempts = 120
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
)

// RateLimiter provides IP-based rate limiting backed by an attempt store.
type RateLimiter struct {
	store          adapter.AttemptStore
	maxAttempts    int
	windowDuration time.Duration
	failOpen       bool
}

// NewRateLimiter creates a new rate limiter with default settings.
func NewRateLimiter(store adapter.AttemptStore) *RateLimiter {
	return NewRateLimiterWithConfig(store, defaultMaxAttempts, defaultWindowDuration, true)
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
func NewRateLimiterWithConfig(store adapter.AttemptStore, maxAttempts int, windowDuration time.Duration, failOpen bool) *RateLimiter {
	return &RateLimiter{
		store:          store,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
		failOpen:       failOpen,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
// Rejections are attached with c.Error and rendered by ErrorHandler.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		count, err := rl.store.Increment(c.Request.Context(), clientIP, rl.windowDuration)
		if err != nil {
			slog.Error("Rate limiter backend failed",
				"error", err,
				"request_id", GetRequestID(c),
				"fail_open", rl.failOpen,
			)
			if rl.failOpen {
				c.Next()
				return
			}
			_ = c.Error(domainerror.NewFeedbackError(
				domainerror.ErrCodeLimiterUnavailable,
				"Service temporarily unavailable. Please try again later.",
				fmt.Errorf("%w: %v", domainerror.ErrLimiterUnavailable, err),
			))
			c.Abort()
			return
		}

		if count > int64(rl.maxAttempts) {
			_ = c.Error(domainerror.NewFeedbackError(
				domainerror.ErrCodeRateLimited,
				"Too many requests. Please try again later.",
				domainerror.ErrRateLimited,
			))
			c.Abort()
			return
		}

		c.Next()
	}
}
