package systems

import (
	"runtime"
	"sync"
)

// parallelThreshold is the minimum particle count to split the pair scan.
// Below this, single-threaded is faster due to goroutine overhead.
const parallelThreshold = 256

// ParallelBruteForce checks all pairs like BruteForce, spreading rows of
// the pair triangle over workers. Output order matches BruteForce.
type ParallelBruteForce struct {
	workers   int
	scratches [][]Link // per-worker link buffers, reused across frames
}

// NewParallelBruteForce creates a finder with one worker per CPU.
func NewParallelBruteForce() *ParallelBruteForce {
	return &ParallelBruteForce{workers: runtime.NumCPU()}
}

// Find implements LinkFinder.
func (p *ParallelBruteForce) Find(dst []Link, ps []Particle, threshold float32) []Link {
	n := len(ps)
	if threshold <= 0 {
		return dst
	}
	if n < parallelThreshold || p.workers < 2 {
		return Links(dst, ps, threshold)
	}

	bounds := rowBounds(n, p.workers)
	chunks := len(bounds) - 1
	if len(p.scratches) < chunks {
		p.scratches = make([][]Link, chunks)
	}

	var wg sync.WaitGroup
	for w := range chunks {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			p.scratches[w] = linkRows(p.scratches[w][:0], ps, bounds[w], bounds[w+1], threshold)
		}(w)
	}
	wg.Wait()

	// Chunks cover ascending row ranges, so concatenation keeps I-then-J order
	for w := range chunks {
		dst = append(dst, p.scratches[w]...)
	}
	return dst
}

// linkRows scans rows [start, end) of the pair triangle.
func linkRows(dst []Link, ps []Particle, start, end int, threshold float32) []Link {
	for i := start; i < end; i++ {
		a := &ps[i]
		for j := i + 1; j < len(ps); j++ {
			if l, ok := linkBetween(a, &ps[j], threshold); ok {
				l.I, l.J = i, j
				dst = append(dst, l)
			}
		}
	}
	return dst
}

// rowBounds splits rows 0..n into at most workers contiguous ranges holding
// roughly equal numbers of pairs. Row i holds n-1-i pairs.
func rowBounds(n, workers int) []int {
	total := n * (n - 1) / 2
	bounds := []int{0}
	acc := 0
	for i := 0; i < n && len(bounds) < workers; i++ {
		acc += n - 1 - i
		if acc*workers >= total*len(bounds) {
			bounds = append(bounds, i+1)
		}
	}
	if bounds[len(bounds)-1] != n {
		bounds = append(bounds, n)
	}
	return bounds
}
