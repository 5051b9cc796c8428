package rworker

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Shards splits [0, n) into at most workers contiguous ranges of near equal size.
func Shards(n, workers int) [][2]int {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	size := (n + workers - 1) / workers
	shards := make([][2]int, 0, workers)
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		shards = append(shards, [2]int{lo, hi})
	}
	return shards
}

// Run calls fn once per shard of [0, n). With a single shard fn runs on the calling
// goroutine. The first error cancels the context passed to the remaining shards.
func Run(ctx context.Context, n, workers int, fn func(ctx context.Context, lo, hi int) error) error {
	shards := Shards(n, workers)
	if len(shards) == 1 {
		return fn(ctx, shards[0][0], shards[0][1])
	}
	g, gCtx := errgroup.WithContext(ctx)
	for _, shard := range shards {
		lo, hi := shard[0], shard[1]
		g.Go(func() error {
			return fn(gCtx, lo, hi)
		})
	}
	return g.Wait()
}
