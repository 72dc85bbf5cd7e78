package commands

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/pctnorm/internal/config"
	"github.com/jmylchreest/pctnorm/internal/logger"
	"github.com/jmylchreest/pctnorm/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the normalizer over HTTP",
		Long: `Serve the normalizer over HTTP.

Endpoints:
  GET  /normalize?value=12%25      normalize a query parameter
  POST /normalize {"value":"12%"}  normalize a JSON body
  GET  /health                     liveness check

Successful values return 200 with {"input","value"}; values that cannot be
normalized return 422 with {"input","error","kind"}.`,
		Args: cobra.NoArgs,
		RunE: a.runServe,
	}

	flags := cmd.Flags()
	flags.String("addr", config.DefaultAddr, "listen address")
	flags.Bool("fold-width", false, "fold full-width digits and symbols before cleaning")
	flags.Duration("shutdown-timeout", config.DefaultShutdownTimeout, "graceful shutdown timeout")

	return cmd
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	n := a.normalizer()
	srv := server.New(n, server.Options{
		Addr:            a.cfg.Serve.Addr,
		ReadTimeout:     a.cfg.Serve.ReadTimeout,
		WriteTimeout:    a.cfg.Serve.WriteTimeout,
		ShutdownTimeout: a.cfg.Serve.ShutdownTimeout,
		MaxBodyBytes:    a.cfg.Serve.MaxBodyBytes,
	})

	logger.Info("starting server",
		"addr", a.cfg.Serve.Addr,
		"cleaner", n.Name(),
		"shutdown_timeout", a.cfg.Serve.ShutdownTimeout.Round(time.Millisecond).String(),
	)
	return srv.Run(ctx)
}
