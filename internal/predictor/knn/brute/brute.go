// Package brute implements exhaustive k-nearest-neighbor search.
//
// Every candidate is scored against the query and pushed into a priority queue bounded
// at k, so the result equals a stable ascending sort of all candidates cut at k:
// candidates at equal distance keep their dataset order.
package brute

import (
	"fmt"

	"github.com/go-sod/knn/internal/geom"
	"github.com/go-sod/knn/internal/predictor/errs"
	"github.com/go-sod/knn/pkg/pqueue"
)

// Nearest returns the k items closest to the query described by distFn, sorted ascending
// by distance. When k exceeds the number of items every item is returned.
func Nearest[T any](k int, items []T, distFn func(T) float64) ([]geom.Neighbor[T], error) {
	if k <= 0 {
		return nil, fmt.Errorf("unable to search %d neighbors: %w", k, errs.ErrInvalidK)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("unable to search neighbors: %w", errs.ErrEmptyDataset)
	}
	n := k
	if n > len(items) {
		n = len(items)
	}
	pq := pqueue.New(pqueue.WithCap[geom.Neighbor[T]](uint(n)))
	for i := range items {
		distance := distFn(items[i])
		pq.Push(geom.Neighbor[T]{Item: items[i], Distance: distance, Index: i}, distance)
	}
	return pq.PopAll(), nil
}

// NearestChips searches chips around a 2-D query point.
func NearestChips(query geom.Point, k int, chips []geom.Chip, distFn geom.DistanceFn) ([]geom.Neighbor[geom.Chip], error) {
	if distFn == nil {
		distFn = geom.EuclideanDistance
	}
	return Nearest(k, chips, func(c geom.Chip) float64 {
		return distFn(query, c.Point)
	})
}

// NearestX searches samples by the absolute distance of their x to the query x.
func NearestX(x float64, k int, samples []geom.Sample) ([]geom.Neighbor[geom.Sample], error) {
	return Nearest(k, samples, func(s geom.Sample) float64 {
		return geom.AbsoluteDistance(x, s)
	})
}
