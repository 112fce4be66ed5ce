// Package parallel distributes per-pixel work across CPU cores.
//
// Fragment kernels are embarrassingly parallel: every invocation is
// independent, with no shared mutable state. Rows slices a target into
// contiguous row bands, one per worker, and joins before returning, so a
// pass either completes as a unit or not at all. Partial completion is
// never observable to the caller.
package parallel

import (
	"runtime"
	"sync"
)

// Rows runs fn over [0, height) split into contiguous bands, one goroutine
// per band. fn receives a half-open row range [y0, y1). Rows blocks until
// every band has finished.
//
// workers <= 0 means GOMAXPROCS. Small targets collapse to a single band to
// avoid paying goroutine overhead for a handful of rows.
func Rows(height, workers int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > height {
		workers = height
	}
	if workers == 1 {
		fn(0, height)
		return
	}

	band := height / workers
	extra := height % workers

	var wg sync.WaitGroup
	wg.Add(workers)

	y := 0
	for i := 0; i < workers; i++ {
		y0 := y
		y1 := y0 + band
		if i < extra {
			y1++
		}
		y = y1

		go func() {
			defer wg.Done()
			fn(y0, y1)
		}()
	}

	wg.Wait()
}
