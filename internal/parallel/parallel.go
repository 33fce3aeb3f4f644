// Package parallel provides chunked fan-out of index ranges across
// goroutines, used to spread batch inference over dataset examples.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how an index range is split across goroutines.
type Config struct {
	Workers  int // Goroutines to fan out across; values below 2 run sequentially.
	MinChunk int // Smallest range worth fanning out at all.
}

// DefaultConfig sizes the fan-out to the machine.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.NumCPU(),
		MinChunk: 16,
	}
}

// For executes f(i) for every i in [0, n), splitting the range into
// contiguous chunks across goroutines. Ranges smaller than cfg.MinChunk run
// sequentially on the calling goroutine. f must be safe to call concurrently.
func For(n int, f func(i int), cfg Config) {
	if cfg.Workers < 2 || n < cfg.MinChunk {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := max((n+cfg.Workers-1)/cfg.Workers, cfg.MinChunk)
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForErr is For with a fallible body. Every index is visited even when some
// fail; the error of the lowest failing index is returned.
func ForErr(n int, f func(i int) error, cfg Config) error {
	errs := make([]error, n)
	For(n, func(i int) {
		errs[i] = f(i)
	}, cfg)
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
