// SPDX-License-Identifier: MIT

package elementwise

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ComputeIntoParallel is ComputeInto split across goroutines.
//
// The index range is cut into contiguous chunks of at least minChunk
// elements (WithMinChunk), at most one chunk per worker (WithWorkers,
// GOMAXPROCS by default). Each index is written by exactly one goroutine,
// so out matches the sequential result bit for bit.
//
// The accessor must be safe for concurrent calls.
//
// Errors:
//   - the structural errors of ComputeInto, before any write;
//   - ctx.Err() when ctx is done before a chunk starts. Chunks already
//     running finish; out is then partially written.
func ComputeIntoParallel[T any](ctx context.Context, out []float64, input []T, param Param[T], acc Accessor[T], opts ...Option) ([]float64, error) {
	if err := validate(out, input, param, acc); err != nil {
		return out, adapterErrorf(opComputeIntoParallel, err)
	}
	o := gatherOptions(opts...)
	k := newKernel(input, param, acc, o)

	n := len(input)
	chunk := chunkSize(n, o.workers, o.minChunk)
	if chunk >= n {
		if err := ctx.Err(); err != nil {
			return out, adapterErrorf(opComputeIntoParallel, err)
		}
		k.run(out, 0, n)
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			k.run(out, lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, adapterErrorf(opComputeIntoParallel, err)
	}

	return out, nil
}

// chunkSize returns ceil(n/workers) bounded below by minChunk.
func chunkSize(n, workers, minChunk int) int {
	if workers < 1 {
		workers = 1
	}
	c := (n + workers - 1) / workers

	return max(c, minChunk)
}
