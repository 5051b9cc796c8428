package srvenv

import (
	"net/http"

	"go.uber.org/zap"
)

type Option func(*SrvEnv) *SrvEnv

func New(opts ...Option) *SrvEnv {
	env := &SrvEnv{}
	for _, f := range opts {
		env = f(env)
	}

	return env
}

type SrvEnv struct {
	logger         *zap.SugaredLogger
	predictHandler http.Handler
}

// Logger may be nil when setup was not given a logger config.
func (s *SrvEnv) Logger() *zap.SugaredLogger {
	return s.logger
}

func (s *SrvEnv) PredictHandler() http.Handler {
	return s.predictHandler
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.logger = logger
		return s
	}
}

func WithPredictHandler(h http.Handler) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.predictHandler = h
		return s
	}
}

func (s *SrvEnv) Close() error {
	if s == nil || s.logger == nil {
		return nil
	}
	// stderr sync fails on some platforms, nothing to do about it
	_ = s.logger.Sync()
	return nil
}
