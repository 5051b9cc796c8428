// Package batch runs the classifier and the regressor over whole query sets.
//
// Every query is independent of the others, so the outer loop may be sharded across
// workers. Results are written into disjoint ranges of the output and keep query order.
package batch

import (
	"context"
	"fmt"

	"github.com/go-sod/knn/internal/geom"
	"github.com/go-sod/knn/internal/logging"
	"github.com/go-sod/knn/internal/predictor"
	"github.com/go-sod/knn/internal/predictor/errs"
	"github.com/go-sod/knn/internal/predictor/knn/brute"
	"github.com/go-sod/knn/pkg/rworker"
)

type Option func(*options)

func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func WithDistance(fn geom.DistanceFn) Option {
	return func(o *options) {
		o.distFn = fn
	}
}

type options struct {
	workers int
	distFn  geom.DistanceFn
}

var defaultOptions = options{workers: 1, distFn: geom.EuclideanDistance}

func newOptions(opts ...Option) options {
	o := defaultOptions
	for _, f := range opts {
		f(&o)
	}
	if o.distFn == nil {
		o.distFn = geom.EuclideanDistance
	}
	return o
}

func validate(k, n int) error {
	if k <= 0 {
		return fmt.Errorf("k=%d: %w", k, errs.ErrInvalidK)
	}
	if n == 0 {
		return errs.ErrEmptyDataset
	}
	return nil
}

// ClassifyMesh predicts a label for every mesh point using chips as the neighbor pool.
func ClassifyMesh(ctx context.Context, k int, chips []geom.Chip, mesh []geom.Point, opts ...Option) ([]geom.Label, error) {
	if err := validate(k, len(chips)); err != nil {
		return nil, fmt.Errorf("unable to classify mesh: %w", err)
	}
	o := newOptions(opts...)
	logger := logging.FromContext(ctx)
	logger.Debugf("classifying mesh of %d points against %d chips, k=%d, workers=%d", len(mesh), len(chips), k, o.workers)

	labels := make([]geom.Label, len(mesh))
	err := rworker.Run(ctx, len(mesh), o.workers, func(ctx context.Context, lo, hi int) error {
		for i := lo; i < hi; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			nn, err := brute.NearestChips(mesh[i], k, chips, o.distFn)
			if err != nil {
				return fmt.Errorf("mesh point %d: %w", i, err)
			}
			label, err := predictor.Classify(nn)
			if err != nil {
				return fmt.Errorf("mesh point %d: %w", i, err)
			}
			labels[i] = label
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to classify mesh: %w", err)
	}
	return labels, nil
}

// PredictSet predicts y for every sample using the samples themselves as the neighbor pool.
// The query sample is part of its own neighbor set.
func PredictSet(ctx context.Context, k int, samples []geom.Sample, opts ...Option) ([]float64, error) {
	xs := make([]float64, len(samples))
	for i := range samples {
		xs[i] = samples[i].X
	}
	return PredictXs(ctx, k, samples, xs, opts...)
}

// PredictXs predicts y at arbitrary x values, for example the steps of a plotted curve.
func PredictXs(ctx context.Context, k int, samples []geom.Sample, xs []float64, opts ...Option) ([]float64, error) {
	if err := validate(k, len(samples)); err != nil {
		return nil, fmt.Errorf("unable to predict y values: %w", err)
	}
	o := newOptions(opts...)
	logger := logging.FromContext(ctx)
	logger.Debugf("predicting %d y values from %d samples, k=%d, workers=%d", len(xs), len(samples), k, o.workers)

	ys := make([]float64, len(xs))
	err := rworker.Run(ctx, len(xs), o.workers, func(ctx context.Context, lo, hi int) error {
		for i := lo; i < hi; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			nn, err := brute.NearestX(xs[i], k, samples)
			if err != nil {
				return fmt.Errorf("x %v: %w", xs[i], err)
			}
			y, err := predictor.Regress(nn)
			if err != nil {
				return fmt.Errorf("x %v: %w", xs[i], err)
			}
			ys[i] = y
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to predict y values: %w", err)
	}
	return ys, nil
}
