package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/paclead/internal/client/api"
	"github.com/iudanet/paclead/internal/client/auth"
	"github.com/iudanet/paclead/internal/client/cli"
	"github.com/iudanet/paclead/internal/client/iocli"
	"github.com/iudanet/paclead/internal/client/storage/boltdb"
	"github.com/iudanet/paclead/internal/logging"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	defaultServerURL = "http://localhost:3000"
	defaultDBPath    = "paclead-client.db"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defaults := cli.Options{
		ServerURL: envOr("PACLEAD_SERVER", defaultServerURL),
		DBPath:    envOr("PACLEAD_DB", defaultDBPath),
	}

	version := fmt.Sprintf("%s\nBuild Date: %s\nGit Commit: %s", Version, BuildDate, GitCommit)

	if err := cli.Execute(ctx, os.Args[1:], version, defaults, setup); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup открывает локальное хранилище сессии и собирает зависимости команд
func setup(ctx context.Context, opts cli.Options) (*cli.Cli, io.Closer, error) {
	logger, err := logging.New(os.Stderr, envOr("PACLEAD_LOG_LEVEL", "warn"), "text")
	if err != nil {
		return nil, nil, err
	}

	boltStorage, err := boltdb.New(ctx, opts.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	apiClient := api.NewClient(opts.ServerURL)
	authService := auth.NewService(apiClient, boltStorage, logger)

	return cli.New(iocli.NewStdio(), authService, apiClient, logger), boltStorage, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
