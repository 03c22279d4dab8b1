// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/password-feedback/config"
	"github.com/finance-tracker/password-feedback/internal/application/adapter"
	"github.com/finance-tracker/password-feedback/internal/application/usecase/password"
	"github.com/finance-tracker/password-feedback/internal/infra/server/router"
	"github.com/finance-tracker/password-feedback/internal/integration/cache"
	"github.com/finance-tracker/password-feedback/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/password-feedback/internal/integration/entrypoint/middleware"
)

const (
	// testMaxAttempts keeps rate limiting out of the way of automated test runs.
	testMaxAttempts = 1000
	// cleanupFallbackInterval is used when the configured window is not positive.
	cleanupFallbackInterval = time.Minute
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Redis  redis.UniversalClient
	Router *router.Router

	stopCleanup func()
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case attempts are counted in memory.
// redisHealthChecker is reported by /health; nil means Redis is not in use.
func NewInjector(cfg *config.Config, redisClient redis.UniversalClient, redisHealthChecker func() bool) *Injector {
	// Create use cases
	evaluateStrengthUseCase := password.NewEvaluateStrengthUseCase()
	checkMatchUseCase := password.NewCheckMatchUseCase()
	evaluatePasswordUseCase := password.NewEvaluatePasswordUseCase(evaluateStrengthUseCase, checkMatchUseCase)

	// Create controllers
	healthController := controller.NewHealthController(redisHealthChecker)

	passwordController := controller.NewPasswordController(
		evaluateStrengthUseCase,
		checkMatchUseCase,
		evaluatePasswordUseCase,
	)

	// Create middleware
	maxAttempts := cfg.RateLimit.MaxAttempts
	if cfg.IsTestEnvironment() {
		maxAttempts = testMaxAttempts
	}
	attemptStore, stopCleanup := newAttemptStore(cfg, redisClient)
	rateLimiter := middleware.NewRateLimiterWithConfig(
		attemptStore,
		maxAttempts,
		cfg.RateLimit.Window,
		cfg.RateLimit.FailOpen,
	)

	r := router.NewRouter(healthController, passwordController, rateLimiter)

	return &Injector{
		Config: cfg,
		Redis:  redisClient,
		Router: r,

		stopCleanup: stopCleanup,
	}
}

// Close stops background work started by the injector.
func (i *Injector) Close() {
	if i.stopCleanup != nil {
		i.stopCleanup()
	}
}

// newAttemptStore picks the rate limiter backend. The returned stop function
// ends the periodic cleanup of the in-memory store and is nil for Redis.
func newAttemptStore(cfg *config.Config, redisClient redis.UniversalClient) (adapter.AttemptStore, func()) {
	if cfg.RateLimit.Backend == config.RateLimitBackendRedis {
		if redisClient != nil {
			return cache.NewRedisAttemptStore(redisClient), nil
		}
		slog.Warn("Redis rate limit backend requested without a redis connection, using memory")
	}

	interval := cfg.RateLimit.Window
	if interval <= 0 {
		interval = cleanupFallbackInterval
	}

	store := cache.NewMemoryAttemptStore()
	return store, store.StartCleanup(interval)
}
