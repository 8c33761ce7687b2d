package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/truthdare/core/internal/adapters/repository"
	"github.com/truthdare/core/internal/application/services"
	"github.com/truthdare/core/internal/infrastructure/config"
	"github.com/truthdare/core/internal/infrastructure/logger"
	"github.com/truthdare/core/internal/infrastructure/server"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Truth and Dare API server",
		Long:  "Start the Truth and Dare API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewValidateDataCommand creates the validate-data command
func NewValidateDataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-data",
		Short: "Validate the content data files",
		Long:  "Load both data files and print a record summary, exiting nonzero on a missing or malformed file",
		Run: func(cmd *cobra.Command, args []string) {
			validateData()
		},
	}
}

// NewStatsCommand creates the stats command
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print content statistics",
		Run: func(cmd *cobra.Command, args []string) {
			printStats()
		},
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print Truth and Dare API version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Truth and Dare API v0.1.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	srv, err := server.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize server", "error", err)
	}

	// Warm up the content cache. A failure is not fatal: queries retry
	// the load lazily, so the server still comes up and reports the
	// problem through /health.
	warmupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := srv.Repository().EnsureLoaded(warmupCtx); err != nil {
		appLogger.Error("Initial data load failed, will retry on demand", "error", err)
	}
	cancel()

	appLogger.Info("Starting Truth and Dare API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
	)

	go func() {
		if err := srv.Start(cfg.Server.Address()); err != nil {
			appLogger.Info("Server stopped", "error", err)
		}
	}()

	// Wait for interrupt and shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server shutdown failed", "error", err)
	}
}

func validateData() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	repo := repository.NewContentRepository(cfg.Data.TruthsFile, cfg.Data.DaresFile, appLogger)

	stats, err := repo.Stats(context.Background())
	if err != nil {
		log.Fatalf("Data validation failed: %v", err)
	}

	fmt.Printf("Data files are valid:\n")
	fmt.Printf("  Truths: %d in %d categories\n", stats.TotalTruths, len(stats.Categories))
	fmt.Printf("  Dares:  %d in %d difficulties\n", stats.TotalDares, len(stats.Difficulties))
}

func printStats() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	repo := repository.NewContentRepository(cfg.Data.TruthsFile, cfg.Data.DaresFile, appLogger)
	truthService := services.NewTruthService(repo, appLogger)
	dareService := services.NewDareService(repo, appLogger)
	gameService := services.NewGameService(truthService, dareService, appLogger)

	stats, err := gameService.GetGameStats(context.Background())
	if err != nil {
		log.Fatalf("Failed to get stats: %v", err)
	}

	fmt.Printf("Truths: %d\n", stats.Truths.Total)
	printCounts(stats.Truths.Counts)
	fmt.Printf("Dares: %d\n", stats.Dares.Total)
	printCounts(stats.Dares.Counts)
	fmt.Printf("Total items: %d\n", stats.TotalItems)
}

func printCounts(counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("  %-15s %d\n", key, counts[key])
	}
}
