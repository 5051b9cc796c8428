package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

type DistanceFuncType string

const (
	DistanceFuncTypeEuclidean DistanceFuncType = "EUCLIDEAN"
	DistanceFuncTypeChebyshev DistanceFuncType = "CHEBYSHEV"
	DistanceFuncTypeManhattan DistanceFuncType = "MANHATTAN"
)

// DistanceFn computes the distance between two points of the 2-D feature space.
type DistanceFn func(a, b Point) float64

func DistanceFuncFor(d DistanceFuncType) (DistanceFn, error) {
	switch d {
	case DistanceFuncTypeEuclidean:
		return EuclideanDistance, nil
	case DistanceFuncTypeChebyshev:
		return ChebyshevDistance, nil
	case DistanceFuncTypeManhattan:
		return ManhattanDistance, nil
	default:
		return nil, fmt.Errorf("unknown distance function: %s", d)
	}
}

func EuclideanDistance(a, b Point) float64 {
	return floats.Distance(a.Points(), b.Points(), 2)
}

func ChebyshevDistance(a, b Point) float64 {
	return floats.Distance(a.Points(), b.Points(), math.Inf(1))
}

func ManhattanDistance(a, b Point) float64 {
	return floats.Distance(a.Points(), b.Points(), 1)
}

// AbsoluteDistance is the 1-D distance between a query x and a sample.
func AbsoluteDistance(x float64, s Sample) float64 {
	return math.Abs(x - s.X)
}
