package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tracecase/trace/internal/api"
	"github.com/tracecase/trace/internal/config"
	"github.com/tracecase/trace/internal/metrics"
	"github.com/tracecase/trace/internal/repository"
)

func main() {
	conf, err := config.LoadServerConf()
	if err != nil {
		slog.Error("failed to read environment", "err", err)
		os.Exit(1)
	}
	addr := flag.String("addr", conf.Addr, "HTTP listen address")
	catalogPath := flag.String("catalog", conf.CatalogPath, "Path to case catalog YAML (empty = embedded catalog)")
	flag.Parse()

	level, err := conf.SlogLevel()
	if err != nil {
		slog.Warn("falling back to info logging", "err", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// ── Load catalog ─────────────────────────────────────────────────────────
	loader, err := config.NewLoader(*catalogPath)
	if err != nil {
		slog.Error("failed to load case catalog", "err", err)
		os.Exit(1)
	}
	cases, err := config.Cases(loader.Config())
	if err != nil {
		slog.Error("failed to build cases", "err", err)
		os.Exit(1)
	}
	repo := repository.NewMemory(cases)
	metrics.CatalogCases.Set(float64(repo.Len()))
	slog.Info("case catalog loaded", "cases", repo.Len(), "version", loader.Config().Version, "source", catalogSource(loader))

	// ── Hot-reload watcher ────────────────────────────────────────────────────
	loader.OnChange(func(cfg *config.CatalogConfig) {
		cases, err := config.Cases(cfg)
		if err != nil {
			slog.Warn("catalog reload skipped", "err", err)
			return
		}
		repo.Replace(cases)
		metrics.CatalogCases.Set(float64(repo.Len()))
		slog.Info("case catalog reloaded", "cases", repo.Len(), "version", cfg.Version)
	})
	stopWatch, err := loader.Watch()
	switch {
	case errors.Is(err, config.ErrNoCatalogFile):
		slog.Info("serving embedded catalog (hot-reload disabled)")
	case err != nil:
		slog.Warn("catalog watcher unavailable (hot-reload disabled)", "err", err)
	default:
		defer stopWatch()
	}

	// ── HTTP server ───────────────────────────────────────────────────────────
	srv := &http.Server{
		Addr:         *addr,
		Handler:      api.New(repo, loader, conf.CORSOrigins),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down…")

	shutCtx, shutCancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
	defer shutCancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		slog.Warn("shutdown incomplete", "err", err)
	}
	slog.Info("goodbye")
}

func catalogSource(l *config.Loader) string {
	if l.Path() == "" {
		return "embedded"
	}
	return l.Path()
}
