package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"edenlog/internal/platform/config"
	"edenlog/internal/platform/httpserver"
	"edenlog/internal/platform/logger"
	"edenlog/pkg/platform/telemetry"
	"edenlog/pkg/platform/telemetry/sinks/jsonsink"
	"edenlog/pkg/platform/telemetry/sinks/slogsink"
	"edenlog/pkg/platform/telemetry/sinks/tracesink"
	"edenlog/pkg/platform/telemetry/sinks/zapsink"
)

const (
	shutdownTimeout = 10 * time.Second
	tracerName      = "edenlog"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Serve the admin endpoint and log daemon_start/daemon_stop events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromEnv()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// serve runs until ctx is done. Telemetry goes to out, diagnostics to errOut.
func serve(ctx context.Context, cfg config.Config, out, errOut io.Writer) error {
	start := time.Now()
	log := logger.New(errOut, cfg)

	ctx, span := otel.Tracer(tracerName).Start(ctx, "daemon")
	defer span.End()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	sink, flush := buildSink(cfg, out, log)
	defer flush()

	tl := telemetry.New(sink,
		telemetry.WithSession(telemetry.NewSessionInfo(cfg.AppVersion)),
		telemetry.WithLogger(log),
		telemetry.WithMetrics(telemetry.NewMetrics(reg)),
	)

	ln, err := net.Listen("tcp", cfg.AdminAddr)
	if err != nil {
		tl.LogEvent(ctx, telemetry.DaemonStart{Duration: time.Since(start).Seconds()})
		return fmt.Errorf("listen on %s: %w", cfg.AdminAddr, err)
	}

	srv := httpserver.New(cfg.AdminAddr, httpserver.NewAdminRouter(reg))
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	tl.LogEvent(ctx, telemetry.DaemonStart{
		Duration: time.Since(start).Seconds(),
		Success:  true,
	})
	log.InfoContext(ctx, "admin endpoint listening", "addr", ln.Addr().String())
	up := time.Now()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serveErr:
		log.ErrorContext(ctx, "admin server failed", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("graceful shutdown failed: %w", err)
	}

	tl.LogEvent(shutdownCtx, telemetry.DaemonStop{
		Duration: time.Since(up).Seconds(),
		Success:  runErr == nil,
	})
	return runErr
}

// buildSink returns the configured sink, teed to the span sink when tracing
// is on, and a flush func to call on exit.
func buildSink(cfg config.Config, out io.Writer, log *slog.Logger) (telemetry.Sink, func()) {
	sink, flush := baseSink(cfg, out, log)
	if cfg.Trace {
		sink = telemetry.Tee(sink, tracesink.New())
	}
	return sink, flush
}

func baseSink(cfg config.Config, out io.Writer, log *slog.Logger) (telemetry.Sink, func()) {
	switch cfg.Sink {
	case config.SinkZap:
		zl := logger.NewZap(out, cfg)
		return zapsink.New(zl), func() { _ = zl.Sync() }
	case config.SinkJSON:
		return jsonsink.New(out, jsonsink.WithLogger(log)), func() {}
	case config.SinkDiscard:
		return telemetry.Discard, func() {}
	default:
		return slogsink.New(logger.New(out, cfg)), func() {}
	}
}
