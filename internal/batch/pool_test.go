package batch

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewPool_InvalidSize(t *testing.T) {
	// Size <= 0 should default to 1
	for _, size := range []int{0, -5} {
		pool := NewPool(size)
		if pool.Size() != 1 {
			t.Errorf("NewPool(%d).Size() = %d, want 1", size, pool.Size())
		}
	}
}

func TestPool_Map(t *testing.T) {
	pool := NewPool(3)
	inputs := []string{"a", "bb", "ccc", "dddd", "eeeee"}

	got, err := pool.Map(context.Background(), inputs, strings.ToUpper)
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}

	want := []string{"A", "BB", "CCC", "DDDD", "EEEEE"}
	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPool_Map_Empty(t *testing.T) {
	got, err := NewPool(2).Map(context.Background(), nil, strings.ToUpper)
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil result, got %v", got)
	}
}

func TestPool_Map_RespectsLimit(t *testing.T) {
	const size = 2
	pool := NewPool(size)

	var running, peak atomic.Int32
	fn := func(s string) string {
		n := running.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)
		return s
	}

	inputs := make([]string, 20)
	if _, err := pool.Map(context.Background(), inputs, fn); err != nil {
		t.Fatalf("Map failed: %v", err)
	}

	if peak.Load() > size {
		t.Errorf("peak concurrency = %d, want <= %d", peak.Load(), size)
	}
}

func TestPool_Map_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPool(2).Map(ctx, []string{"a", "b"}, strings.ToUpper)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
}

func TestPool_Map_CanceledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	fn := func(s string) string {
		if calls.Add(1) == 3 {
			cancel()
		}
		return s
	}

	inputs := make([]string, 100)
	_, err := NewPool(1).Map(ctx, inputs, fn)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
	if calls.Load() >= 100 {
		t.Errorf("expected cancellation to stop work early, got %d calls", calls.Load())
	}
}
