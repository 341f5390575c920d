package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

func TestCacheSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "report:networth", `{"net_worth":"42"}`, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	value, err := cache.Get(ctx, "report:networth")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if value != `{"net_worth":"42"}` {
		t.Errorf("value = %q, want stored snapshot", value)
	}
}

func TestCacheGetMissing(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)

	_, err := cache.Get(context.Background(), "nope")
	if !errors.Is(err, redislib.Nil) {
		t.Errorf("expected redis.Nil for missing key, got %v", err)
	}
}

func TestCacheKeysArePrefixed(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if !mr.Exists("ledgerlens:k") {
		t.Error("expected key to be stored under the ledgerlens prefix")
	}
}

func TestCacheDelete(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := cache.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := cache.Get(ctx, "k"); !errors.Is(err, redislib.Nil) {
		t.Errorf("expected redis.Nil after delete, got %v", err)
	}
}
