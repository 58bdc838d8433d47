package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for TTL tests
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := NewMemoryWithClock(clock.Now)

	if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want miss", ok, err)
	}

	if err := store.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, ok, err := store.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get(k) = ok=%v err=%v, want hit", ok, err)
	}
	if !bytes.Equal(value, []byte("v")) {
		t.Errorf("Get(k) = %q, want %q", value, "v")
	}
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := NewMemoryWithClock(clock.Now)

	if err := store.Set(ctx, "k", []byte("v"), 20*time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// Still valid just before expiry
	clock.Advance(20*time.Minute - time.Second)
	if _, ok, _ := store.Get(ctx, "k"); !ok {
		t.Fatal("Get() missed before TTL elapsed")
	}

	// Gone at expiry
	clock.Advance(time.Second)
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Fatal("Get() hit after TTL elapsed")
	}
}

func TestMemoryStalenessWithinTTL(t *testing.T) {
	// A value written once stays byte-identical for the whole TTL window
	// no matter what happens to the underlying data.
	ctx := context.Background()
	clock := newFakeClock()
	store := NewMemoryWithClock(clock.Now)

	original := []byte(`{"posts":[1,2]}`)
	if err := store.Set(ctx, "page", original, 20*time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	clock.Advance(10 * time.Minute)
	value, ok, _ := store.Get(ctx, "page")
	if !ok || !bytes.Equal(value, original) {
		t.Fatalf("Get() = %q ok=%v, want original bytes", value, ok)
	}
}

func TestMemoryOverwrite(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	store.Set(ctx, "k", []byte("old"), time.Minute)
	store.Set(ctx, "k", []byte("new"), time.Minute)

	value, ok, _ := store.Get(ctx, "k")
	if !ok || string(value) != "new" {
		t.Errorf("Get() = %q ok=%v, want new", value, ok)
	}
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	store.Set(ctx, "k", []byte("v"), time.Minute)
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Fatal("Get() hit after Delete()")
	}
}
