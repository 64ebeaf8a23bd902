// Package parallel spreads independent evaluations over worker goroutines.
//
// Differentiation engines are single threaded, so only work that owns its own
// nodes (one forward seed set or one reverse graph per item) may be split.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4, // One evaluation builds a whole expression.
	}
}

// For executes f(i) for i in [0, n) and returns the error of the lowest index
// that failed. Every index runs even if an earlier one fails.
func For(n int, f func(i int) error, cfg Config) error {
	errs := make([]error, n)

	if !cfg.Enabled || cfg.NumWorkers < 2 || n < 2*cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			errs[i] = f(i)
		}
		return first(errs)
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				errs[i] = f(i)
			}
		}(start, end)
	}
	wg.Wait()
	return first(errs)
}

func first(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
