package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vendapp/repvendas/internal/client/api"
	"github.com/vendapp/repvendas/internal/client/capture"
	"github.com/vendapp/repvendas/internal/client/cli"
	"github.com/vendapp/repvendas/internal/client/iocli"
	"github.com/vendapp/repvendas/internal/client/netmon"
	"github.com/vendapp/repvendas/internal/client/storage/boltdb"
	syncService "github.com/vendapp/repvendas/internal/client/sync"
	"github.com/vendapp/repvendas/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const watchInterval = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; the environment wins over it.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", cfg.ServerURL, "Server URL")
	dbPath := flag.String("db", cfg.DBPath, "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		return nil
	}

	cfg.ServerURL = *serverURL
	cfg.DBPath = *dbPath

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	args := flag.Args()
	stdio := iocli.NewStdio()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		return fmt.Errorf("no command given")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.ServerURL, cfg.HTTPTimeout)

	// Connectivity state is seeded with one probe and updated by later
	// probes (the watch command) or by request outcomes observed by the
	// user rerunning commands.
	monitor := netmon.New(apiClient.Reachable(ctx), logger)

	syncSvc := syncService.NewService(apiClient, boltStorage, cfg.SyncBatch, logger)
	captureSvc := capture.NewService(apiClient, boltStorage, boltStorage, monitor, logger)

	switch args[0] {
	case "capture":
		return cli.RunCapture(ctx, stdio, captureSvc, args[1:])
	case "pending":
		return cli.RunPending(ctx, stdio, boltStorage)
	case "sync":
		return cli.RunSync(ctx, stdio, syncSvc)
	case "remove":
		return cli.RunRemove(ctx, stdio, boltStorage, args[1:])
	case "clear":
		return cli.RunClear(ctx, stdio, boltStorage)
	case "status":
		return cli.RunStatus(ctx, stdio, monitor, syncSvc)
	case "orders":
		return cli.RunOrders(ctx, stdio, apiClient)
	case "catalog":
		return cli.RunCatalog(ctx, stdio, captureSvc, boltStorage, args[1:])
	case "watch":
		return cli.RunWatch(ctx, stdio, apiClient, monitor, syncSvc, watchInterval)
	default:
		cli.PrintUsage(stdio)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printVersion() {
	fmt.Printf("RepVendas Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
