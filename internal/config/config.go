package config

import (
	"github.com/go-sod/knn/internal/predict"
	"github.com/go-sod/knn/internal/predictor"
	"github.com/go-sod/knn/internal/setup"
)

var (
	_ setup.LoggerConfigProvider    = (*Config)(nil)
	_ setup.PredictorConfigProvider = (*Config)(nil)
	_ setup.PredictConfigProvider   = (*Config)(nil)
)

type Config struct {
	SrvAddr        string `envconfig:"KNN_ADDR" default:":8787"`
	LogLevel       string `envconfig:"KNN_LOG_LEVEL" default:"info"`
	LogDevelopment bool   `envconfig:"KNN_LOG_DEVELOPMENT" default:"false"`
	Predict        predict.Config
	Predictor      predictor.Config
}

func (c *Config) LoggerLevel() string {
	return c.LogLevel
}

func (c *Config) LoggerDevelopment() bool {
	return c.LogDevelopment
}

func (c *Config) PredictConfig() *predict.Config {
	return &c.Predict
}

func (c *Config) PredictorConfig() *predictor.Config {
	return &c.Predictor
}
