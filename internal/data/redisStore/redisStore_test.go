package redisStore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newMiniStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewTestStore(client), mr
}

func TestIncrementWindow(t *testing.T) {
	store, mr := newMiniStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := store.IncrementWindow(ctx, "ratelimit:1.2.3.4", time.Second)
		if err != nil {
			t.Fatalf("IncrementWindow failed: %v", err)
		}
		if got != want {
			t.Errorf("count got %d, want %d", got, want)
		}
	}

	ttl, err := store.TTL(ctx, "ratelimit:1.2.3.4")
	if err != nil || ttl <= 0 || ttl > time.Second {
		t.Errorf("ttl got %v err %v", ttl, err)
	}

	mr.FastForward(2 * time.Second)

	got, err := store.IncrementWindow(ctx, "ratelimit:1.2.3.4", time.Second)
	if err != nil || got != 1 {
		t.Errorf("after the window expired got %d err %v, want 1", got, err)
	}
}

func TestIncrementWindow_ArmsMissingExpiry(t *testing.T) {
	store, mr := newMiniStore(t)
	ctx := context.Background()

	// a counter stuck above the limit without a TTL must not block the key forever
	if err := mr.Set("ratelimit:5.6.7.8", "41"); err != nil {
		t.Fatal(err)
	}

	got, err := store.IncrementWindow(ctx, "ratelimit:5.6.7.8", time.Second)
	if err != nil || got != 42 {
		t.Fatalf("count got %d err %v, want 42", got, err)
	}
	if ttl := mr.TTL("ratelimit:5.6.7.8"); ttl <= 0 || ttl > time.Second {
		t.Errorf("ttl got %v, want it armed", ttl)
	}

	mr.FastForward(2 * time.Second)
	if got, _ := store.IncrementWindow(ctx, "ratelimit:5.6.7.8", time.Second); got != 1 {
		t.Errorf("after the window expired got %d, want 1", got)
	}
}

func TestIncrementWindow_KeysAreIndependent(t *testing.T) {
	store, _ := newMiniStore(t)
	ctx := context.Background()

	_, _ = store.IncrementWindow(ctx, "a", time.Minute)
	_, _ = store.IncrementWindow(ctx, "a", time.Minute)
	got, err := store.IncrementWindow(ctx, "b", time.Minute)
	if err != nil || got != 1 {
		t.Errorf("key b got %d err %v, want 1", got, err)
	}
}

func TestIncrementWindow_Offline(t *testing.T) {
	store, mr := newMiniStore(t)
	mr.Close()

	if _, err := store.IncrementWindow(context.Background(), "a", time.Second); err == nil {
		t.Error("expected an error once redis is gone")
	}
}

func TestGetRedisStore_Offline(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if s := GetRedisStore(ctx, Options{Addr: "127.0.0.1:1", DB: 7}); s != nil {
		t.Error("expected nil store when redis does not answer")
	}
}

func TestGetRedisStore_Shared(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := GetRedisStore(ctx, Options{Addr: mr.Addr(), DB: 3})
	if first == nil {
		t.Fatal("expected a store")
	}
	if second := GetRedisStore(ctx, Options{Addr: mr.Addr(), DB: 3}); second != first {
		t.Error("expected the same instance for the same db")
	}
	if err := first.Ping(ctx); err != nil {
		t.Errorf("ping failed: %v", err)
	}
}
