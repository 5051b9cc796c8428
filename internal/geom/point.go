package geom

import (
	"fmt"

	"github.com/go-sod/knn/internal/predictor/errs"
)

// Label is the outcome of a chip test. The zero value means the record carries no label.
type Label uint8

const (
	LabelUnknown Label = iota
	LabelFail
	LabelOK
)

// Integer encoding used at the system boundary.
const (
	fail = 0
	ok   = 1
)

func LabelFromInt(v float64) (Label, error) {
	switch v {
	case fail:
		return LabelFail, nil
	case ok:
		return LabelOK, nil
	default:
		return LabelUnknown, fmt.Errorf("label %v is not 0 or 1: %w", v, errs.ErrMalformedPoint)
	}
}

// Int returns the boundary encoding of the label, 0 for FAIL and 1 for OK.
func (l Label) Int() (int, error) {
	switch l {
	case LabelFail:
		return fail, nil
	case LabelOK:
		return ok, nil
	default:
		return 0, fmt.Errorf("label is missing: %w", errs.ErrMalformedPoint)
	}
}

func (l Label) String() string {
	switch l {
	case LabelFail:
		return "FAIL"
	case LabelOK:
		return "OK"
	default:
		return "UNKNOWN"
	}
}

type Point struct {
	X1 float64
	X2 float64
}

func PointFromRow(row []float64) (Point, error) {
	if len(row) < 2 {
		return Point{}, fmt.Errorf("point row %v has %d fields, need 2: %w", row, len(row), errs.ErrMalformedPoint)
	}
	return Point{X1: row[0], X2: row[1]}, nil
}

func (p Point) Points() []float64 {
	return []float64{p.X1, p.X2}
}

type Chip struct {
	Point
	Label Label
}

// ChipFromRow converts a raw [x1, x2, label] row.
func ChipFromRow(row []float64) (Chip, error) {
	if len(row) < 3 {
		return Chip{}, fmt.Errorf("chip row %v has %d fields, need 3: %w", row, len(row), errs.ErrMalformedPoint)
	}
	label, err := LabelFromInt(row[2])
	if err != nil {
		return Chip{}, err
	}
	return Chip{Point: Point{X1: row[0], X2: row[1]}, Label: label}, nil
}

func ChipsFromRows(rows [][]float64) ([]Chip, error) {
	chips := make([]Chip, len(rows))
	for i := range rows {
		chip, err := ChipFromRow(rows[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		chips[i] = chip
	}
	return chips, nil
}

// Sample is a 1-D regression record.
type Sample struct {
	X float64
	Y float64
}

func SampleFromRow(row []float64) (Sample, error) {
	if len(row) < 2 {
		return Sample{}, fmt.Errorf("sample row %v has %d fields, need 2: %w", row, len(row), errs.ErrMalformedPoint)
	}
	return Sample{X: row[0], Y: row[1]}, nil
}

func SamplesFromRows(rows [][]float64) ([]Sample, error) {
	samples := make([]Sample, len(rows))
	for i := range rows {
		s, err := SampleFromRow(rows[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		samples[i] = s
	}
	return samples, nil
}

// Neighbor pairs a dataset member with its distance to a query.
// Index is the position of the member in the dataset it was taken from.
type Neighbor[T any] struct {
	Item     T
	Distance float64
	Index    int
}
