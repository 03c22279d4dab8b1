package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/password-feedback/internal/application/adapter"
)

const defaultKeyPrefix = "pwdfeedback:attempts:"

// incrementScript bumps the counter and arms the window in one step.
// A counter that somehow lost its TTL is re-armed on the next hit, so no key
// outlives its window for good.
const incrementScript = `
local count = redis.call("INCR", KEYS[1])
if redis.call("PTTL", KEYS[1]) < 0 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`

var incrementLua = redis.NewScript(incrementScript)

// RedisAttemptStore keeps attempt counters in Redis so limits hold across replicas.
type RedisAttemptStore struct {
	client redis.UniversalClient
	prefix string
}

var _ adapter.AttemptStore = (*RedisAttemptStore)(nil)

// NewRedisAttemptStore creates a Redis-backed attempt store.
func NewRedisAttemptStore(client redis.UniversalClient) *RedisAttemptStore {
	return &RedisAttemptStore{
		client: client,
		prefix: defaultKeyPrefix,
	}
}

// Increment records an attempt for key using fixed-window semantics.
// The TTL is only set when the key has none, so the window does not slide.
func (s *RedisAttemptStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := s.prefix + key

	count, err := incrementLua.Run(ctx, s.client, []string{redisKey}, window.Milliseconds()).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to increment attempts: %w", err)
	}

	return count, nil
}
