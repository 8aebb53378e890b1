package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"reputation_pulse/internal/cache"
	"reputation_pulse/internal/collector/github"
	"reputation_pulse/internal/collector/rss"
	"reputation_pulse/internal/config"
	"reputation_pulse/internal/scheduler"
	"reputation_pulse/internal/service"
	"reputation_pulse/internal/storage/sqlite"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	handle := flag.String("handle", "", "scan a single handle and print the result")
	history := flag.Int("history", 0, "print the latest N scans across all handles")
	insights := flag.String("insights", "", "print aggregate insights for a handle")
	series := flag.String("series", "", "print the score series for a handle")
	limit := flag.Int("limit", 20, "row limit for -series")
	watch := flag.Bool("watch", false, "periodically re-scan the configured watch handles")
	flag.Parse()

	logger := setupLogger("info")

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	logger = setupLogger(cfg.LogLevel)

	store, err := sqlite.New(cfg.Database.Path, logger)
	if err != nil {
		logger.Error("failed to open scan store", "error", err)
		os.Exit(1)
	}

	cacheStore, err := cache.New(cfg.GitHub.CacheDir)
	if err != nil {
		logger.Error("failed to open cache", "error", err)
		os.Exit(1)
	}

	profiles := github.New(github.Config{
		UserURL:        cfg.GitHub.UserURL,
		ReposURL:       cfg.GitHub.ReposURL,
		PerPage:        cfg.GitHub.ReposPerPage,
		MaxPages:       cfg.GitHub.MaxRepoPages,
		MaxRecentRepos: cfg.GitHub.MaxRecentRepos,
		Timeout:        cfg.GitHub.Timeout,
		Token:          cfg.GitHub.Token,
		CacheTTL:       cfg.GitHub.CacheTTL,
	}, cacheStore, logger)

	feeds := rss.New(cfg.GitHub.Timeout, logger)

	scanService := service.NewScanService(profiles, feeds, store, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	switch {
	case *handle != "":
		result, err := scanService.RunAndStore(ctx, *handle)
		if err != nil {
			logger.Error("scan failed", "handle", *handle, "error", err)
			os.Exit(1)
		}
		printJSON(result)

	case *history > 0:
		scans, err := store.LatestScans(ctx, *history)
		if err != nil {
			logger.Error("history query failed", "error", err)
			os.Exit(1)
		}
		printJSON(scans)

	case *insights != "":
		insight, err := store.HandleInsights(ctx, *insights)
		if err != nil {
			logger.Error("insights query failed", "handle", *insights, "error", err)
			os.Exit(1)
		}
		if insight == nil {
			logger.Error("no scan history for handle", "handle", *insights)
			os.Exit(1)
		}
		printJSON(insight)

	case *series != "":
		points, err := store.ScoreSeries(ctx, *series, *limit)
		if err != nil {
			logger.Error("series query failed", "handle", *series, "error", err)
			os.Exit(1)
		}
		printJSON(points)

	case *watch:
		if len(cfg.Watch.Handles) == 0 {
			logger.Error("watch mode requires watch.handles in the config")
			os.Exit(1)
		}
		sched := scheduler.NewScheduler(scanService, cfg.Watch.Handles, cfg.Watch.Interval, logger)
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler error", "error", err)
			os.Exit(1)
		}

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func printJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
