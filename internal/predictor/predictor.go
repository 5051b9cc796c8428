package predictor

import (
	"fmt"

	"github.com/go-sod/knn/internal/geom"
	"github.com/go-sod/knn/internal/predictor/errs"
	"gonum.org/v1/gonum/stat"
)

// Classify predicts a chip label by majority vote over its neighbors.
// FAIL wins only with a strict majority, so an even split and an empty set both give OK.
func Classify(nn []geom.Neighbor[geom.Chip]) (geom.Label, error) {
	var failCnt int
	for i := range nn {
		switch nn[i].Item.Label {
		case geom.LabelFail:
			failCnt++
		case geom.LabelOK:
		default:
			return geom.LabelUnknown, fmt.Errorf(
				"neighbor %d (%v) has no label: %w", nn[i].Index, nn[i].Item.Point, errs.ErrMalformedPoint,
			)
		}
	}
	if float64(failCnt) > float64(len(nn))/2 {
		return geom.LabelFail, nil
	}
	return geom.LabelOK, nil
}

// Regress predicts y as the mean y of the neighbors.
func Regress(nn []geom.Neighbor[geom.Sample]) (float64, error) {
	if len(nn) == 0 {
		return 0.0, fmt.Errorf("unable to regress over empty neighbor set: %w", errs.ErrInvalidK)
	}
	ys := make([]float64, len(nn))
	for i := range nn {
		ys[i] = nn[i].Item.Y
	}
	return stat.Mean(ys, nil), nil
}
