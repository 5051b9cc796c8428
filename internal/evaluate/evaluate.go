// Package evaluate measures prediction quality.
//
// ErrorCount is in-sample: the dataset is the neighbor pool and the query set at once,
// and a chip is not removed from its own neighbor set. With k=1 every chip is its own
// nearest neighbor, so the count is always zero.
package evaluate

import (
	"fmt"

	"github.com/go-sod/knn/internal/geom"
	"github.com/go-sod/knn/internal/predictor"
	"github.com/go-sod/knn/internal/predictor/errs"
	"github.com/go-sod/knn/internal/predictor/knn/brute"
	"gonum.org/v1/gonum/floats"
)

// ErrorCount returns how many chips the classifier mislabels. A nil distFn means Euclidean.
func ErrorCount(k int, chips []geom.Chip, distFn geom.DistanceFn) (int, error) {
	if len(chips) == 0 {
		return 0, fmt.Errorf("unable to count errors: %w", errs.ErrEmptyDataset)
	}
	var failCnt int
	for i := range chips {
		if chips[i].Label == geom.LabelUnknown {
			return 0, fmt.Errorf("chip %d has no label: %w", i, errs.ErrMalformedPoint)
		}
		nn, err := brute.NearestChips(chips[i].Point, k, chips, distFn)
		if err != nil {
			return 0, fmt.Errorf("unable to count errors, chip %d: %w", i, err)
		}
		result, err := predictor.Classify(nn)
		if err != nil {
			return 0, fmt.Errorf("unable to count errors, chip %d: %w", i, err)
		}
		if result != chips[i].Label {
			failCnt++
		}
	}
	return failCnt, nil
}

// ErrorReport is the outcome of in-sample classification of a chip set.
type ErrorReport struct {
	Count int
	Rate  float64
}

// Report counts mislabeled chips and relates the count to the number of chips.
func Report(k int, chips []geom.Chip, distFn geom.DistanceFn) (ErrorReport, error) {
	cnt, err := ErrorCount(k, chips, distFn)
	if err != nil {
		return ErrorReport{}, err
	}
	return ErrorReport{Count: cnt, Rate: float64(cnt) / float64(len(chips))}, nil
}

// ErrorRate is ErrorCount divided by the number of chips.
func ErrorRate(k int, chips []geom.Chip, distFn geom.DistanceFn) (float64, error) {
	report, err := Report(k, chips, distFn)
	if err != nil {
		return 0.0, err
	}
	return report.Rate, nil
}

// MSE returns the mean of squared differences of two equal length sequences.
func MSE(actual, predicted []float64) (float64, error) {
	if len(actual) != len(predicted) {
		return 0.0, fmt.Errorf("unable to compute mse of %d and %d values: %w", len(actual), len(predicted), errs.ErrLengthMismatch)
	}
	if len(actual) == 0 {
		return 0.0, fmt.Errorf("unable to compute mse: %w", errs.ErrEmptyDataset)
	}
	diff := make([]float64, len(actual))
	floats.SubTo(diff, actual, predicted)
	return floats.Dot(diff, diff) / float64(len(diff)), nil
}
