package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cartcompass/backend/internal/domain"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.Set(ctx, "key", map[string]string{"hello": "world"}, time.Minute); err != nil {
		t.Fatal(err)
	}

	value, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatal(err)
	}

	// Values come back in their JSON shape.
	m, ok := value.(map[string]interface{})
	if !ok {
		t.Fatalf("value is %T, want map[string]interface{}", value)
	}
	if m["hello"] != "world" {
		t.Errorf("value = %v", m)
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemoryCache()

	_, err := c.Get(context.Background(), "absent")
	if !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("err = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCacheExpiration(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.Set(ctx, "key", "value", 10*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)

	if _, err := c.Get(ctx, "key"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("expired key should miss, got %v", err)
	}
	exists, err := c.Exists(ctx, "key")
	if err != nil || exists {
		t.Errorf("expired key should not exist, got %v/%v", exists, err)
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.Set(ctx, "key", "value", time.Minute); err != nil {
		t.Fatal(err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatal(err)
	}

	exists, err := c.Exists(ctx, "key")
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("deleted key still exists")
	}
}

func TestMemoryCacheSizeAndClear(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "a", 1, time.Minute)
	c.Set(ctx, "b", 2, time.Minute)

	if c.Size() != 2 {
		t.Errorf("size = %d, want 2", c.Size())
	}

	c.Clear()
	if c.Size() != 0 {
		t.Errorf("size after clear = %d, want 0", c.Size())
	}
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				c.Set(ctx, "shared", n*100+j, time.Minute)
				c.Get(ctx, "shared")
				c.Exists(ctx, "shared")
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	if _, err := c.Get(ctx, "shared"); err != nil {
		t.Errorf("shared key should be present: %v", err)
	}
}
