package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jrazmi/todoserver/app/tooling/commands"
	"github.com/jrazmi/todoserver/infrastructure/postgresdb"
	"github.com/jrazmi/todoserver/sdk/environment"
	"github.com/jrazmi/todoserver/sdk/logger"
)

var build = "develop"
var appName = "TODO"

func processCommands(ctx context.Context, log *logger.Logger, command string, pg *pgxpool.Pool) error {
	switch command {
	case "migrate":
		if err := commands.Migrate(ctx, pg, log.Logger); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		return nil

	default:
		printHelp()
		return nil
	}
}

func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  migrate - create the todos schema in the database")
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)
	// DATA INFRASTRUCTURE
	// ==============================================================================
	// Parse command from arguments
	var command string
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	// Show help and exit early if requested
	if command == "help" || command == "--help" || command == "-h" {
		printHelp()
		return nil
	}
	pg, err := postgresdb.NewFromEnv(appName,
		postgresdb.WithLogger(log.Logger),
		postgresdb.WithTracer(postgresdb.NewLoggingQueryTracer(log.Logger)),
	)
	if err != nil {
		return fmt.Errorf("configuring postgres support: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		pg.Close()
	}()
	log.InfoContext(ctx, "init", "service", "postgres")

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	// Process commands in a goroutine to allow for graceful shutdown
	done := make(chan error, 1)
	go func() {
		done <- processCommands(ctx, log, command, pg)
	}()

	// Handle shutdown
	select {
	case err := <-done:
		return err

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)

		// Give a short time for commands to complete
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		// Wait for command to complete or timeout
		select {
		case err := <-done:
			return err
		case <-shutdownCtx.Done():
			return fmt.Errorf("shutdown timeout: %w", shutdownCtx.Err())
		}
	}

}

func main() {
	if err := environment.LoadEnv(); err != nil {
		fmt.Println("reading .env:", err)
	}

	log, err := logger.NewFromEnv(appName)
	if err != nil {
		fmt.Println("oh no we couldn't even get logging going.")
		os.Exit(1)
	}
	ctx := context.Background()

	if err = run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}
