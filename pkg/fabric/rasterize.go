package fabric

import (
	"golang.org/x/sync/errgroup"
)

// Rasterize sizes a fabric to fit claims and applies every claim to it.
func Rasterize(claims []Claim, workers int) (*Fabric, error) {
	return RasterizeLimited(claims, workers, DefaultMaxCells)
}

// RasterizeLimited is Rasterize with an explicit cell limit.
//
// With workers > 1 the claims are split into contiguous chunks; each worker
// fills a private partial grid and the partials are summed once all workers
// finish. Increments commute, so the result matches the sequential pass.
// The result grid and the partials together stay within maxCells, so the
// worker count is lowered when the limit cannot hold one partial per worker.
func RasterizeLimited(claims []Claim, workers int, maxCells int) (*Fabric, error) {
	width, height := Bounds(claims)
	fab, err := NewLimited(width, height, maxCells)
	if err != nil {
		return nil, err
	}

	workers = fitWorkers(workers, len(claims), width*height, maxCells)
	if workers <= 1 {
		if err := fab.fill(claims); err != nil {
			return nil, err
		}
		return fab, nil
	}

	partials := make([]*Fabric, workers)
	chunk := (len(claims) + workers - 1) / workers
	var g errgroup.Group
	for w := range workers {
		start := min(w*chunk, len(claims))
		end := min(start+chunk, len(claims))
		g.Go(func() error {
			partial := &Fabric{width: width, height: height, counts: make([]uint32, width*height)}
			if err := partial.fill(claims[start:end]); err != nil {
				return err
			}
			partials[w] = partial
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, p := range partials {
		fab.add(p)
	}
	return fab, nil
}

// fitWorkers caps workers so that the result grid plus one partial grid per
// worker needs at most maxCells cells. cells must not exceed maxCells.
func fitWorkers(workers, claims, cells, maxCells int) int {
	workers = min(workers, claims)
	if workers <= 1 || cells == 0 {
		return workers
	}
	return min(workers, maxCells/cells-1)
}
