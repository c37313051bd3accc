package tests

import (
	"sync/atomic"
	"testing"
	"time"

	"busriya/internal/service"
)

// ──────────────────────────────────────────────
// 11. INSTANCE REGISTRY
// ──────────────────────────────────────────────

func TestRegistry_PutGetRemove(t *testing.T) {
	t.Parallel()

	registry := service.NewRegistry[string](time.Minute, nil)
	defer registry.Close()

	registry.Put("a", "first")
	registry.Put("b", "second")

	value, ok := registry.Get("a")
	if !ok || value != "first" {
		t.Fatalf("expected first, got %q (%v)", value, ok)
	}
	if registry.Len() != 2 {
		t.Errorf("expected 2 instances, got %d", registry.Len())
	}

	if !registry.Remove("a") {
		t.Error("expected Remove to report the instance existed")
	}
	if _, ok := registry.Get("a"); ok {
		t.Error("expected instance gone after Remove")
	}
	if registry.Remove("a") {
		t.Error("expected Remove of a missing id to report false")
	}
}

func TestRegistry_IdleInstancesEvicted(t *testing.T) {
	t.Parallel()

	var evicted int32
	registry := service.NewRegistry[int](50*time.Millisecond, func(int) {
		atomic.AddInt32(&evicted, 1)
	})
	defer registry.Close()

	registry.Put("stale", 1)

	deadline := time.Now().Add(5 * time.Second)
	for atomic.LoadInt32(&evicted) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for idle eviction")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if _, ok := registry.Get("stale"); ok {
		t.Error("expected idle instance removed from the registry")
	}
}

func TestRegistry_CloseEvictsEverything(t *testing.T) {
	t.Parallel()

	var evicted int32
	registry := service.NewRegistry[int](time.Minute, func(int) {
		atomic.AddInt32(&evicted, 1)
	})

	registry.Put("a", 1)
	registry.Put("b", 2)
	registry.Close()

	if atomic.LoadInt32(&evicted) != 2 {
		t.Errorf("expected 2 evictions on close, got %d", evicted)
	}
	if registry.Len() != 0 {
		t.Errorf("expected empty registry after close, got %d", registry.Len())
	}
}
