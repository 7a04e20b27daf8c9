package trace

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/eclipseshadow/shadowtrace/photon"
)

// Counters tallies the per-photon soft outcomes: a dropped photon is
// never fatal, but the drop rates are reported alongside the build result.
type Counters struct {
	Missed     int64 // NeverEntered
	Impacted   int64 // PlanetImpact
	StepCapHit int64
}

// Run traces every photon in batch concurrently, sharding the array by
// index range across numWorkers goroutines. Addition to Counters happens
// per-shard and is summed after the group completes, so there is no
// shared mutable state during tracing itself.
//
// The returned slice holds only the photons that reached Exited, in no
// particular order; callers must not rely on ordering.
func Run(ctx context.Context, cfg Config, batch []photon.Photon, numWorkers int) ([]photon.Photon, Counters, error) {
	if numWorkers < 1 {
		numWorkers = 1
	}

	shardExited := make([][]photon.Photon, numWorkers)
	shardCounters := make([]Counters, numWorkers)

	g, _ := errgroup.WithContext(ctx)
	shardSize := (len(batch) + numWorkers - 1) / numWorkers
	if shardSize == 0 {
		shardSize = 1
	}

	for w := 0; w < numWorkers; w++ {
		w := w
		start := w * shardSize
		end := start + shardSize
		if start > len(batch) {
			start = len(batch)
		}
		if end > len(batch) {
			end = len(batch)
		}

		g.Go(func() error {
			var exited []photon.Photon
			var counters Counters

			for i := start; i < end; i++ {
				p := batch[i]
				switch Trace(cfg, &p) {
				case Exited:
					exited = append(exited, p)
				case PlanetImpact:
					counters.Impacted++
				case NeverEntered:
					counters.Missed++
				case StepCapHit:
					counters.StepCapHit++
				}
			}

			shardExited[w] = exited
			shardCounters[w] = counters
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Counters{}, err
	}

	var total Counters
	var exited []photon.Photon
	for w := 0; w < numWorkers; w++ {
		exited = append(exited, shardExited[w]...)
		total.Missed += shardCounters[w].Missed
		total.Impacted += shardCounters[w].Impacted
		total.StepCapHit += shardCounters[w].StepCapHit
	}

	return exited, total, nil
}
