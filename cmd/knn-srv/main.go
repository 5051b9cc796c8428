package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/go-sod/knn/internal/buildinfo"
	"github.com/go-sod/knn/internal/config"
	"github.com/go-sod/knn/internal/logging"
	"github.com/go-sod/knn/internal/server"
	"github.com/go-sod/knn/internal/setup"
	"github.com/go-sod/knn/internal/shutdown"
)

func main() {
	_, _ = fmt.Fprint(os.Stdout, buildinfo.Graffiti)
	_, _ = fmt.Fprintf(
		os.Stdout,
		"%s: %s, %s\n",
		buildinfo.Info.Name(),
		buildinfo.Info.Time(),
		buildinfo.Info.Tag(),
	)

	ctx, done := shutdown.New()
	defer done()
	if err := run(ctx); err != nil {
		logging.FromContext(ctx).Fatal(err)
	}
}

func run(ctx context.Context) error {
	cfg := config.Config{}
	env, err := setup.Setup(ctx, &cfg)
	if err != nil {
		return fmt.Errorf("setup.Setup: %w", err)
	}
	defer env.Close()
	if env.Logger() != nil {
		ctx = logging.WithLogger(ctx, env.Logger())
	}
	logger := logging.FromContext(ctx)

	srv, err := server.New(cfg.SrvAddr)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", env.PredictHandler())
	mux.Handle("/health", server.HandleHealth(ctx))

	logger.Infof("listening on %s", srv.Addr())
	return srv.ServeHTTPHandler(ctx, mux)
}
