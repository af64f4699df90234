package accent

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathantroyer/base24gen/apca"
	"github.com/jonathantroyer/base24gen/cie"
	"github.com/jonathantroyer/base24gen/gamut"
)

// maxWorkers bounds the errgroup's concurrency; the accent solver rarely
// sees more than a handful of hues, but this keeps a pathological caller
// (hundreds of hues) from spawning a goroutine and an 18MB gamut cache per
// hue all at once.
const maxWorkers = 8

// Optimize runs the per-hue optimizer for every hue against background,
// fanning work out across a bounded worker pool. Each worker owns its
// own gamut cache, so there is no lock on the hot path; a per-hue
// InfeasibleConstraint or OptimizerFailure degrades that hue's result to
// a warning instead of aborting the whole batch. Results are returned in
// input order.
func Optimize(ctx context.Context, background cie.Srgb8, hues []float32, settings Settings, minContrast float32) (Result, error) {
	start := time.Now()

	bgLum := apca.Luminance(background)

	results := make([]HueOptResult, len(hues))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)

	for i, hue := range hues {
		i, hue := i, hue
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			cache := gamut.NewCache()
			results[i] = optimizeSingleHue(cache, bgLum, hue, settings, minContrast)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	elapsed := time.Since(start).Milliseconds()

	return Result{HueResults: results, ElapsedMs: elapsed}, nil
}
