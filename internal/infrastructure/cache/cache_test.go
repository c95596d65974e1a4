package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	if got := key("abc"); got != "meetmatch:results:abc" {
		t.Errorf("got %q", got)
	}
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var c Noop
	if err := c.Set(ctx, "e", "en:5", []byte("x")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok, err := c.Get(ctx, "e", "en:5"); ok || err != nil {
		t.Errorf("noop cache must always miss, got ok=%v err=%v", ok, err)
	}
	if err := c.Invalidate(ctx, "e"); err != nil {
		t.Errorf("invalidate: %v", err)
	}
}

// TestRedisCache runs against a real server when MEETMATCH_TEST_REDIS_URL is set.
func TestRedisCache(t *testing.T) {
	url := os.Getenv("MEETMATCH_TEST_REDIS_URL")
	if url == "" {
		t.Skip("MEETMATCH_TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	client, err := Connect(ctx, url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	c := NewRedisCache(client, time.Minute)
	eventID := "test-" + time.Now().Format("150405.000000")

	if _, ok, err := c.Get(ctx, eventID, "en:5"); ok || err != nil {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}
	if err := c.Set(ctx, eventID, "en:5", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Set(ctx, eventID, "fr:5", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	data, ok, err := c.Get(ctx, eventID, "en:5")
	if err != nil || !ok || string(data) != `{"a":1}` {
		t.Fatalf("unexpected get: %q %v %v", data, ok, err)
	}
	if err := c.Invalidate(ctx, eventID); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, ok, _ := c.Get(ctx, eventID, "fr:5"); ok {
		t.Error("invalidate must drop every variant")
	}
}
