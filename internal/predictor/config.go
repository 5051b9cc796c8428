package predictor

import (
	"fmt"

	"github.com/go-sod/knn/internal/geom"
)

type Config struct {
	// number of neighbors consulted per prediction when a request does not set one
	KNum           int                   `envconfig:"KNN_K" default:"3"`
	MetricFuncType geom.DistanceFuncType `envconfig:"KNN_DISTANCE_FUNC" default:"EUCLIDEAN"`
	// shards of the batch outer loop, 1 keeps it single-threaded
	Workers int `envconfig:"KNN_WORKERS" default:"1"`
}

func (c Config) Validate() error {
	if c.KNum <= 0 {
		return fmt.Errorf("KNN_K must be positive, got %d", c.KNum)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("KNN_WORKERS must be positive, got %d", c.Workers)
	}
	if _, err := geom.DistanceFuncFor(c.MetricFuncType); err != nil {
		return err
	}
	return nil
}

func (c Config) DistanceFunc() (geom.DistanceFn, error) {
	return geom.DistanceFuncFor(c.MetricFuncType)
}
