package analysis

import (
	"runtime"
	"sync"

	"github.com/san-kum/lorenzviz/internal/lorenz"
)

// SweepPoint is one sample of a parameter sweep: the rho value tried
// and the largest Lyapunov exponent measured there.
type SweepPoint struct {
	Rho      float64
	Lyapunov float64
}

// SweepRho estimates the largest Lyapunov exponent across a range of
// rho values, holding sigma and beta fixed. Samples are computed in
// parallel; the returned slice is ordered by rho ascending.
func SweepRho(base lorenz.Params, s0 lorenz.State, rhoMin, rhoMax float64, steps int, dt, duration float64) []SweepPoint {
	if steps < 1 || rhoMax < rhoMin {
		return nil
	}

	points := make([]SweepPoint, steps)
	width := 0.0
	if steps > 1 {
		width = (rhoMax - rhoMin) / float64(steps-1)
	}

	parallelFor(steps, 4, func(start, end int) {
		for i := start; i < end; i++ {
			p := base
			p.Rho = rhoMin + float64(i)*width
			points[i] = SweepPoint{
				Rho:      p.Rho,
				Lyapunov: LyapunovExponent(p, s0, dt, duration, 1e-8),
			}
		}
	})

	return points
}

// parallelFor splits [0, n) into contiguous chunks and runs fn on each
// from its own goroutine. Small inputs run inline.
func parallelFor(n, minChunk int, fn func(start, end int)) {
	workers := runtime.NumCPU()
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}
	if n/minChunk < workers {
		workers = n / minChunk
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
