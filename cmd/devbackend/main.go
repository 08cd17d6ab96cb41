package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/paclead/internal/devbackend"
	"github.com/iudanet/paclead/internal/logging"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg := devbackend.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show version information")
	flag.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to run server")
	flag.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path to SQLite database")
	flag.StringVar(&cfg.Secret, "s", envOr("DEVBACKEND_JWT_SECRET", cfg.Secret), "JWT signing secret")
	flag.DurationVar(&cfg.TokenTTL, "t", cfg.TokenTTL, "access token TTL")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger, err := logging.New(os.Stdout, *logLevel, "text")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("dev backend stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg devbackend.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	srv, err := devbackend.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := srv.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	return srv.Run(ctx)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printVersion() {
	fmt.Printf("Pac Lead Dev Backend\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
