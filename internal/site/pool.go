package site

import "runtime"

// Worker count bounds for automatic sizing.
const (
	MinWorkers = 1
	MaxWorkers = 8
)

// ResolveWorkers determines how many pages render concurrently.
// Priority: explicit count > GOMAXPROCS-based calculation.
func ResolveWorkers(n int) int {
	if n > 0 {
		return n
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers.
	n = runtime.GOMAXPROCS(0) / 2
	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
