package parallel

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestForVisitsEveryIndex(t *testing.T) {
	n := 1000
	seen := make([]int32, n)

	For(n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	}, DefaultConfig())

	for i, c := range seen {
		if c != 1 {
			t.Errorf("index %d visited %d times", i, c)
		}
	}
}

func TestForSequentialFallback(t *testing.T) {
	// Below MinChunk the range runs on the calling goroutine, in order.
	var order []int
	For(10, func(i int) {
		order = append(order, i)
	}, DefaultConfig())

	for i, got := range order {
		if got != i {
			t.Fatalf("expected sequential order, got %v", order)
		}
	}
	if len(order) != 10 {
		t.Fatalf("expected 10 iterations, got %d", len(order))
	}
}

func TestForSingleWorker(t *testing.T) {
	var counter int64
	For(1000, func(_ int) {
		counter++ // safe: Workers < 2 never spawns goroutines
	}, Config{Workers: 1, MinChunk: 1})

	if counter != 1000 {
		t.Errorf("expected 1000, got %d", counter)
	}
}

func TestForErr(t *testing.T) {
	errLow, errHigh := errors.New("low"), errors.New("high")

	err := ForErr(1000, func(i int) error {
		switch i {
		case 100:
			return errLow
		case 900:
			return errHigh
		}
		return nil
	}, DefaultConfig())
	if err != errLow {
		t.Errorf("expected the lowest-index error, got %v", err)
	}

	if err := ForErr(100, func(int) error { return nil }, DefaultConfig()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				sum += int64(i)
			}, Config{Workers: 1})
		}
	})
}
