package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/alnah/go-scholardraft"
	"github.com/alnah/go-scholardraft/internal/metrics"
	"github.com/alnah/go-scholardraft/internal/server"
)

// serveFlags holds flags for the serve command.
type serveFlags struct {
	addr   string
	render renderFlags
}

func newServeCmd(a *app) *cobra.Command {
	var f serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the export HTTP API",
		Long: `Serve exposes the exporter over HTTP:

  GET  /healthz                  liveness probe
  GET  /metrics                  Prometheus metrics
  POST /v1/documents[/:section]  export a document file
  POST /v1/bibliography          export references as RIS
  POST /v1/outline               estimated TOC and length report

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runServe(cmd, &f)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.addr, "addr", "", "listen address (default: server.addr, env SCHOLARDRAFT_SERVER_ADDR)")
	f.render.register(fs)
	return cmd
}

func (a *app) runServe(cmd *cobra.Command, f *serveFlags) error {
	opts, err := a.exporterOptions(f.render.timeout, f.render.workers)
	if err != nil {
		return err
	}

	m := metrics.New()
	size := scholardraft.ResolvePoolSize(a.workers(f.render.workers))
	pool := scholardraft.NewExporterPool(size, append(opts, scholardraft.WithObserver(m))...)
	defer func() {
		if err := pool.Close(); err != nil {
			a.logger.Warn("closing exporter pool", slog.Any("error", err))
		}
	}()

	srv := server.New(pool, server.Options{
		CORSOrigins:    a.cfg.Server.CORSOrigins,
		Logger:         a.logger,
		Metrics:        m,
		TracerProvider: otel.GetTracerProvider(),
	})

	addr := stringFlag(cmd.Flags(), "addr", f.addr, a.cfg.Server.Addr)
	a.logger.Info("starting server", slog.String("addr", addr), slog.Int("pool_size", size))
	return srv.Run(cmd.Context(), addr)
}
