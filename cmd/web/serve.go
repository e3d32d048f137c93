package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"webgro.in/website/internal/config"
	"webgro.in/website/internal/contact"
	"webgro.in/website/internal/content"
	"webgro.in/website/internal/httpserver"
	"webgro.in/website/internal/observability"
	"webgro.in/website/internal/site"
)

func newServeCommand() *cobra.Command {
	var (
		envFile string
		port    string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []config.Option{config.WithEnvFile(envFile)}
			if port != "" {
				opts = append(opts, config.WithEnvMap(map[string]string{"WEBGRO_PORT": port}))
			}
			cfg, err := config.Load(opts...)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file with local overrides")
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides WEBGRO_PORT)")
	return cmd
}

func serve(parent context.Context, cfg config.Config) error {
	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	siteCfg, err := site.Default()
	if err != nil {
		return err
	}
	library, err := content.Default()
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	relay := contact.NewRelayClient(cfg.Relay.URL, cfg.Relay.Timeout,
		contact.WithTracer(otel.Tracer("webgro.in/website/contact")))
	submitter := contact.NewSubmitter(contact.Config{
		AccessKey:     cfg.Relay.AccessKey,
		FromName:      cfg.Relay.FromName,
		FallbackEmail: siteCfg.Contact().Email,
	}, relay, contact.WithMetrics(contact.NewMetrics(registry)))
	if submitter.DryRun() {
		logger.Warn("relay access key not set; contact submissions are logged only")
	}

	srv := httpserver.New(httpserver.Config{
		Address:          cfg.Server.Addr(),
		BaseURL:          cfg.Site.BaseURL,
		Site:             siteCfg,
		Content:          library,
		Submitter:        submitter,
		Logger:           logger,
		Gatherer:         registry,
		ScrollDelay:      cfg.Nav.ScrollDelay,
		ContactPerMinute: cfg.RateLimit.ContactPerMinute,
		ContactBurst:     cfg.RateLimit.ContactBurst,
		CSRFCookieSecure: cfg.Site.Production(),
		ReadTimeout:      cfg.Server.ReadTimeout,
		WriteTimeout:     cfg.Server.WriteTimeout,
		IdleTimeout:      cfg.Server.IdleTimeout,
		RequestTimeout:   cfg.Server.RequestTimeout,
	})

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("server listening",
		zap.String("addr", srv.Addr),
		zap.String("environment", cfg.Site.Environment),
		zap.Bool("relay_dry_run", submitter.DryRun()),
	)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("http server failed", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}
