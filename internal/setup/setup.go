package setup

import (
	"context"
	"fmt"

	"github.com/go-sod/knn/internal/logging"
	"github.com/go-sod/knn/internal/predict"
	"github.com/go-sod/knn/internal/predictor"
	"github.com/go-sod/knn/internal/srvenv"
	"github.com/kelseyhightower/envconfig"
)

type LoggerConfigProvider interface {
	LoggerLevel() string
	LoggerDevelopment() bool
}

type PredictorConfigProvider interface {
	PredictorConfig() *predictor.Config
}

type PredictConfigProvider interface {
	PredictConfig() *predict.Config
}

// Setup loads config from the environment and builds the pieces it provides.
func Setup(ctx context.Context, config interface{}) (*srvenv.SrvEnv, error) {
	var serverEnvOpts []srvenv.Option
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	logger := logging.FromContext(ctx)
	if loggerConfigProvider, ok := config.(LoggerConfigProvider); ok {
		logger = logging.NewLogger(loggerConfigProvider.LoggerLevel(), loggerConfigProvider.LoggerDevelopment())
		serverEnvOpts = append(serverEnvOpts, srvenv.WithLogger(logger))
	}

	predictorConfigProvider, ok := config.(PredictorConfigProvider)
	if !ok {
		return srvenv.New(serverEnvOpts...), nil
	}
	logger.Info("Configuring predictor")
	predictorCfg := predictorConfigProvider.PredictorConfig()
	if err := predictorCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid predictor config: %w", err)
	}
	logger.Infof("predictor: k=%d, distance=%s, workers=%d", predictorCfg.KNum, predictorCfg.MetricFuncType, predictorCfg.Workers)

	if predictConfigProvider, ok := config.(PredictConfigProvider); ok {
		logger.Info("Configuring predict handler")
		handler, err := predict.NewHandler(predictConfigProvider.PredictConfig(), predictorCfg)
		if err != nil {
			return nil, fmt.Errorf("unable create predict handler: %w", err)
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithPredictHandler(handler))
	}
	return srvenv.New(serverEnvOpts...), nil
}
