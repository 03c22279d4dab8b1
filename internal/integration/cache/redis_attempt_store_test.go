package cache

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return mr, client
}

func TestRedisAttemptStore_Increment(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	store := NewRedisAttemptStore(client)

	for i := int64(1); i <= 3; i++ {
		count, err := store.Increment(ctx, "10.0.0.1", time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != i {
			t.Errorf("expected count %d, got %d", i, count)
		}
	}

	ttl := mr.TTL(defaultKeyPrefix + "10.0.0.1")
	if ttl <= 0 || ttl > time.Minute {
		t.Errorf("expected TTL within one minute, got %v", ttl)
	}

	mr.FastForward(time.Minute + time.Second)

	count, err := store.Increment(ctx, "10.0.0.1", time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected count 1 after window expiry, got %d", count)
	}
}

func TestRedisAttemptStore_WindowDoesNotSlide(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	store := NewRedisAttemptStore(client)

	_, _ = store.Increment(ctx, "k", time.Minute)
	mr.FastForward(30 * time.Second)
	_, _ = store.Increment(ctx, "k", time.Minute)

	ttl := mr.TTL(defaultKeyPrefix + "k")
	if ttl > 30*time.Second {
		t.Errorf("expected TTL to keep counting down from the first hit, got %v", ttl)
	}
}

func TestRedisAttemptStore_BackendDown(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisAttemptStore(client)
	mr.Close()

	if _, err := store.Increment(context.Background(), "k", time.Minute); err == nil {
		t.Error("expected error when redis is unavailable")
	}
}

// flakyScriptHook fails the first script call with a timeout, as a dropped
// connection would.
type flakyScriptHook struct {
	failed atomic.Bool
}

func (h *flakyScriptHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h *flakyScriptHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		name := cmd.Name()
		if (name == "evalsha" || name == "eval") && h.failed.CompareAndSwap(false, true) {
			err := fmt.Errorf("i/o timeout")
			cmd.SetErr(err)
			return err
		}
		return next(ctx, cmd)
	}
}

func (h *flakyScriptHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func TestRedisAttemptStore_CounterExpiresAfterTransientFailure(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	client.AddHook(&flakyScriptHook{})
	store := NewRedisAttemptStore(client)

	if _, err := store.Increment(ctx, "203.0.113.9", time.Minute); err == nil {
		t.Fatal("expected first increment to fail")
	}
	for i := 0; i < 6; i++ {
		if _, err := store.Increment(ctx, "203.0.113.9", time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if ttl := mr.TTL(defaultKeyPrefix + "203.0.113.9"); ttl <= 0 {
		t.Fatalf("expected counter to carry a TTL, got %v", ttl)
	}

	mr.FastForward(24 * time.Hour)

	count, err := store.Increment(ctx, "203.0.113.9", time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected a fresh window after expiry, got count %d", count)
	}
}

func TestRedisAttemptStore_RearmsCounterWithoutTTL(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	store := NewRedisAttemptStore(client)

	// A counter left behind without an expiry.
	if err := mr.Set(defaultKeyPrefix+"k", "500"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	count, err := store.Increment(ctx, "k", time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 501 {
		t.Errorf("expected count 501, got %d", count)
	}

	ttl := mr.TTL(defaultKeyPrefix + "k")
	if ttl <= 0 || ttl > time.Minute {
		t.Errorf("expected TTL within one minute, got %v", ttl)
	}
}
