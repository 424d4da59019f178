// Command mirrorlog copies lines from stdin to the platform log and,
// optionally, to a mirrored file in logcat format:
//
//	some-daemon 2>&1 | mirrorlog -tag daemon -file /var/log/daemon.log
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/philipp01105/mirrorlog/config"
	"github.com/philipp01105/mirrorlog/handler"
	"github.com/philipp01105/mirrorlog/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("mirrorlog: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to configuration file")
	tag := flag.String("tag", "", "process tag (overrides processTag)")
	file := flag.String("file", "", "mirrored file (overrides file.path)")
	platform := flag.String("platform", "", "platform sink: auto, logcat, stderr, syslog, zap, none")
	class := flag.String("class", "", "logger name; lines are prefixed with [class]")
	levelName := flag.String("level", "info", "level for every line")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address (overrides metrics.addr)")
	flag.Parse()

	level, ok := logger.ParseLevel(*levelName)
	if !ok {
		return fmt.Errorf("unknown level %q", *levelName)
	}

	overrides := map[string]interface{}{}
	if *tag != "" {
		overrides["processTag"] = *tag
	}
	if *file != "" {
		overrides["file.path"] = *file
	}
	if *platform != "" {
		overrides["platform"] = *platform
	}
	if *metricsAddr != "" {
		overrides["metrics.addr"] = *metricsAddr
	}

	cfg, err := config.LoadWith(*configPath, overrides)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	b, err := logger.NewBuilderFromConfig(cfg)
	if err != nil {
		return err
	}
	stats := handler.NewStats()
	b.WithStats(stats)

	proc, err := b.Build()
	if err != nil {
		return err
	}
	defer proc.Close()
	diag := b.Diagnostics()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Addr != "" {
		srv := newMetricsServer(cfg.Metrics.Addr, handler.NewCollector(stats, cfg.Metrics.Namespace))
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				diag.Error("metrics server failed", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
	}

	var l *logger.Logger
	if *class != "" {
		l = proc.Logger(*class)
	} else {
		l = proc.NewLogger("")
	}

	done := make(chan error, 1)
	go func() { done <- copyLines(os.Stdin, l, level) }()
	select {
	case err = <-done:
	case <-ctx.Done():
	}

	s := stats.GetSnapshot()
	diag.Debug("input finished",
		zap.Uint64("records", s.TotalRecords()),
		zap.Uint64("fileErrors", s.FileErrors))
	return err
}

// copyLines logs every line of r until EOF.
func copyLines(r io.Reader, l *logger.Logger, level logger.Level) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		l.LogBytes(level, sc.Bytes())
	}
	return sc.Err()
}

func newMetricsServer(addr string, c prometheus.Collector) *http.Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(c)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
