package predictor

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-sod/knn/internal/geom"
	"github.com/go-sod/knn/internal/predictor/errs"
	"github.com/valyala/fastrand"
)

func neighbors(labels ...geom.Label) []geom.Neighbor[geom.Chip] {
	nn := make([]geom.Neighbor[geom.Chip], len(labels))
	for i, l := range labels {
		nn[i] = geom.Neighbor[geom.Chip]{
			Item:     geom.Chip{Point: geom.Point{X1: float64(i)}, Label: l},
			Distance: float64(i),
			Index:    i,
		}
	}
	return nn
}

func TestClassify(t *testing.T) {
	const (
		F = geom.LabelFail
		O = geom.LabelOK
	)
	tests := []struct {
		name        string
		nn          []geom.Neighbor[geom.Chip]
		expected    geom.Label
		expectedErr error
	}{
		{name: "single_fail", nn: neighbors(F), expected: F},
		{name: "single_ok", nn: neighbors(O), expected: O},
		{name: "tie_2_of_4", nn: neighbors(F, F, O, O), expected: O},
		{name: "tie_1_of_2", nn: neighbors(F, O), expected: O},
		{name: "majority_fail", nn: neighbors(F, O, F), expected: F},
		{name: "majority_ok", nn: neighbors(O, F, O), expected: O},
		{name: "3_of_4", nn: neighbors(F, F, O, F), expected: F},
		{name: "empty", nn: nil, expected: O},
		{name: "missing_label", nn: neighbors(F, geom.LabelUnknown), expected: geom.LabelUnknown, expectedErr: errs.ErrMalformedPoint},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Classify(test.nn)
			if !errors.Is(err, test.expectedErr) {
				t.Errorf("classify error got: %v, expected: %v", err, test.expectedErr)
			}
			if got != test.expected {
				t.Errorf("classify got: %v, expected: %v\n%s", got, test.expected, spew.Sdump(test.nn))
			}
		})
	}
}

func TestClassify_OrderIndependent(t *testing.T) {
	sets := [][]geom.Neighbor[geom.Chip]{
		neighbors(geom.LabelFail, geom.LabelFail, geom.LabelOK, geom.LabelOK),
		neighbors(geom.LabelFail, geom.LabelOK, geom.LabelFail, geom.LabelOK, geom.LabelFail),
		neighbors(geom.LabelOK, geom.LabelOK, geom.LabelFail),
	}
	for _, nn := range sets {
		expected, err := Classify(nn)
		if err != nil {
			t.Fatalf("the error should not be returned: %v", err)
		}
		for round := 0; round < 50; round++ {
			shuffled := append([]geom.Neighbor[geom.Chip](nil), nn...)
			for i := len(shuffled) - 1; i > 0; i-- {
				j := int(fastrand.Uint32n(uint32(i + 1)))
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			}
			got, err := Classify(shuffled)
			if err != nil {
				t.Fatalf("the error should not be returned: %v", err)
			}
			if got != expected {
				t.Fatalf("permuted neighbors changed prediction got: %v, expected: %v\n%s", got, expected, spew.Sdump(shuffled))
			}
		}
	}
}

func TestRegress(t *testing.T) {
	tests := []struct {
		name        string
		ys          []float64
		expected    float64
		expectedErr error
	}{
		{name: "k_3", ys: []float64{2.0, 4.0, 6.0}, expected: 4.0},
		{name: "k_2", ys: []float64{20, 30}, expected: 25.0},
		{name: "k_1", ys: []float64{-7.5}, expected: -7.5},
		{name: "empty", ys: nil, expectedErr: errs.ErrInvalidK},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			nn := make([]geom.Neighbor[geom.Sample], len(test.ys))
			for i, y := range test.ys {
				nn[i] = geom.Neighbor[geom.Sample]{Item: geom.Sample{X: float64(i), Y: y}, Index: i}
			}
			got, err := Regress(nn)
			if !errors.Is(err, test.expectedErr) {
				t.Errorf("regress error got: %v, expected: %v", err, test.expectedErr)
			}
			if got != test.expected {
				t.Errorf("regress got: %f, expected: %f", got, test.expected)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		err  bool
	}{
		{name: "positive", cfg: Config{KNum: 3, MetricFuncType: geom.DistanceFuncTypeEuclidean, Workers: 1}},
		{name: "zero_k", cfg: Config{KNum: 0, MetricFuncType: geom.DistanceFuncTypeEuclidean, Workers: 1}, err: true},
		{name: "zero_workers", cfg: Config{KNum: 1, MetricFuncType: geom.DistanceFuncTypeEuclidean}, err: true},
		{name: "unknown_metric", cfg: Config{KNum: 1, MetricFuncType: "COSINE", Workers: 1}, err: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.cfg.Validate()
			if (err != nil) != test.err {
				t.Errorf("config validation got: %v, expected error: %v", err, test.err)
			}
		})
	}
}
