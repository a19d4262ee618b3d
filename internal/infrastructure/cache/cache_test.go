package cache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	if err := store.Set(ctx, "a", "1", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	val, ok, err := store.Get(ctx, "a")
	if err != nil || !ok || val != "1" {
		t.Fatalf("Get(a) = %q, %v, %v; want 1, true, nil", val, ok, err)
	}

	if err := store.Delete(ctx, "a", "missing"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := store.Get(ctx, "a"); ok {
		t.Error("Get(a) found key after Delete")
	}
}

func TestMemoryStore_Expiration(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(10 * time.Millisecond)
	defer store.Close()

	_ = store.Set(ctx, "short", "x", time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	if _, ok, _ := store.Get(ctx, "short"); ok {
		t.Error("expired key still readable")
	}

	deadline := time.Now().Add(time.Second)
	for store.Len() > 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d after cleanup, want 0", store.Len())
	}
}

func TestMemoryStore_Close(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	if err := store.Set(ctx, "a", "1", time.Minute); err != ErrClosed {
		t.Errorf("Set() after Close error = %v, want ErrClosed", err)
	}
}

func TestConfidenceCache(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()
	c := NewConfidenceCache(store, time.Minute, zap.NewNop())

	payload := entities.ConfidencePayload(`{"hello":0.9}`)
	c.Set(ctx, 7, payload)

	got, ok := c.Get(ctx, 7)
	if !ok || string(got) != string(payload) {
		t.Fatalf("Get(7) = %s, %v", got, ok)
	}

	c.Set(ctx, 8, nil)
	if _, ok := c.Get(ctx, 8); ok {
		t.Error("absent payload was cached")
	}

	c.Delete(ctx, 7, 8)
	if _, ok := c.Get(ctx, 7); ok {
		t.Error("Get(7) hit after Delete")
	}
}

func TestConfidenceCache_ClosedStoreIsMiss(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	c := NewConfidenceCache(store, time.Minute, zap.NewNop())
	c.Set(ctx, 1, entities.ConfidencePayload(`{"a":1}`))
	_ = store.Close()

	if _, ok := c.Get(ctx, 1); ok {
		t.Error("Get() hit on closed store")
	}
}

func TestNewConfidenceCache_NilStoreIsNop(t *testing.T) {
	c := NewConfidenceCache(nil, time.Minute, zap.NewNop())
	if _, ok := c.(Nop); !ok {
		t.Fatalf("NewConfidenceCache(nil) = %T, want Nop", c)
	}
	c.Set(context.Background(), 1, entities.ConfidencePayload(`{"a":1}`))
	if _, ok := c.Get(context.Background(), 1); ok {
		t.Error("Nop cache returned a hit")
	}
}
