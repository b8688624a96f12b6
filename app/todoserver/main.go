package main

import (
	"context"
	"expvar"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/jrazmi/todoserver/app/todoserver/config"
	"github.com/jrazmi/todoserver/bridge/repositories/todosrepobridge"
	"github.com/jrazmi/todoserver/bridge/scaffolding/checkbridge"
	"github.com/jrazmi/todoserver/bridge/scaffolding/mid"
	"github.com/jrazmi/todoserver/core/repositories/todosrepo"
	"github.com/jrazmi/todoserver/core/repositories/todosrepo/stores/todosmemstore"
	"github.com/jrazmi/todoserver/core/repositories/todosrepo/stores/todospgxstore"
	"github.com/jrazmi/todoserver/core/services/todoservice"
	"github.com/jrazmi/todoserver/infrastructure/postgresdb"
	"github.com/jrazmi/todoserver/infrastructure/web"
	"github.com/jrazmi/todoserver/sdk/environment"
	"github.com/jrazmi/todoserver/sdk/logger"
	"github.com/jrazmi/todoserver/sdk/telemetry"
)

var build = "develop"
var appName = "TODO"

func main() {
	envErr := environment.LoadEnv()
	ctx := context.Background()

	cfg, err := config.Load(appName)
	if err != nil {
		logger.NewDefault().ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log, logger.WithPrefix(appName))
	if envErr != nil {
		log.WarnContext(ctx, "startup", "status", "reading .env", "err", envErr)
	}

	if err := run(ctx, log, cfg); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger, cfg config.Todoserver) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	// :*: START STORAGE :*:
	storer, closeStore, err := openStore(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer closeStore()
	// END STORAGE //

	log.InfoContext(ctx, "startup", "status", "initializing repository support", "driver", cfg.Store.Driver)
	repo := todosrepo.NewRepository(log, storer)
	svc := todoservice.New(log, repo)

	server := web.NewServer(cfg.Web,
		web.WithHandler(webHandler(log, cfg, repo, svc)),
		web.WithErrorLog(logger.NewStdLogger(log, slog.LevelError)),
	)

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// openStore builds the configured todo store and the func that releases it.
func openStore(ctx context.Context, log *logger.Logger, cfg config.Todoserver) (todosrepo.Storer, func(), error) {
	if cfg.Store.Driver == config.DriverMemory {
		log.WarnContext(ctx, "startup", "status", "using in-memory store, data is lost on exit")
		return todosmemstore.NewStore(), func() {}, nil
	}

	pool, err := postgresdb.New(cfg.Database, postgresdb.WithLogger(log.Logger))
	if err != nil {
		return nil, nil, fmt.Errorf("configuring postgres support: %w", err)
	}
	closeFn := func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		pool.Close()
	}

	if cfg.Store.AutoMigrate {
		if err := postgresdb.Migrate(ctx, pool, log.Logger); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("migrating database: %w", err)
		}
	}

	return todospgxstore.NewStore(log, pool), closeFn, nil
}

func webHandler(log *logger.Logger, cfg config.Todoserver, repo *todosrepo.Repository, svc *todoservice.Service) http.Handler {
	tel := telemetry.NewTelemetry()

	// INITIALIZATION
	wh := web.NewWebHandler(cfg.Handler,
		web.WithLogging(log.Logger),
		web.WithTelemetry(tel),
		web.WithNotFound(mid.RouteNotFound),
		web.WithGlobalMiddleware(
			mid.Logger(log, tel), // Request logging
			mid.Errors(log, tel), // Error handling
			mid.Metrics(),        // Metrics collection
			mid.Panics(),         // Panic recovery
		),
	)

	// CHECKS
	checkbridge.AddHttpRoutes(wh.Group(""), checkbridge.Config{
		Log:  log,
		Ping: repo.Ping,
	})

	// API
	todosrepobridge.AddHttpRoutes(wh.Group(cfg.Web.APIPrefix), todosrepobridge.Config{
		Log:     log,
		Service: svc,
	})

	if cfg.Web.EnableDebug {
		wh.HandleRaw("GET /debug/vars", expvar.Handler())
	}

	return wh
}
