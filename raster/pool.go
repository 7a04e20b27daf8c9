package raster

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/eclipseshadow/shadowtrace/grid"
	"github.com/eclipseshadow/shadowtrace/photon"
)

// Run deposits every photon in batch into acc concurrently, sharding the
// array across numWorkers goroutines. Accumulator.Add is the only shared
// mutable state touched by the workers, and it is safe for concurrent use
// by construction.
func Run(ctx context.Context, g *grid.Grid, acc *Accumulator, batch []photon.Photon, numWorkers int) error {
	if numWorkers < 1 {
		numWorkers = 1
	}

	gr, _ := errgroup.WithContext(ctx)
	shardSize := (len(batch) + numWorkers - 1) / numWorkers
	if shardSize == 0 {
		shardSize = 1
	}

	for w := 0; w < numWorkers; w++ {
		start := w * shardSize
		end := start + shardSize
		if start > len(batch) {
			start = len(batch)
		}
		if end > len(batch) {
			end = len(batch)
		}

		gr.Go(func() error {
			for i := start; i < end; i++ {
				Deposit(g, acc, batch[i])
			}
			return nil
		})
	}

	return gr.Wait()
}
