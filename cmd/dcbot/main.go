package main

import (
	"context"
	"dcbot/domain"
	"dcbot/gateway"
	"dcbot/infrastructure/web"
	"dcbot/internal"
	"dcbot/repositories"
	"dcbot/repositories/sqlite"
	"dcbot/runtime"
	"dcbot/runtime/workers"
	"dcbot/services"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dcbot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component, serves until a signal arrives and drains the
// in-flight jobs before returning, so that deferred cleanups always run.
func run() (int, error) {
	// 1. Configuration & Logger
	dotenvErr := godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	if dotenvErr != nil {
		logger.Debug("No .env file loaded", "error", dotenvErr)
	}

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Store
	store, err := openStore(ctx, config, logger)
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		logger.Info("Closing store...", "driver", config.StoreDriver)
		_ = store.Close()
	}()

	// 4. Chat platform & services
	chat := gateway.NewSlackGateway(config.SlackAppToken, config.SlackBotToken, config.SlackAPIURL, logger)
	responder := gateway.NewWebhookResponder(&http.Client{Timeout: config.RemoteTimeout})

	directory := services.NewDirectoryService(chat, store, store, store, services.DirectoryConfig{
		Prefix:          domain.ChannelPrefix(config.ChannelPrefix),
		MainChannelName: config.MainChannel,
		MainChannelID:   config.MainChannelID,
	}, logger)
	floor := services.NewFloorService(store, logger)
	hosting := services.NewHostingService(store, logger)

	// A failed first sync is not fatal, the sync worker retries.
	syncCtx, cancelSync := context.WithTimeout(ctx, config.RemoteTimeout)
	if err = directory.Sync(syncCtx); err != nil {
		logger.Warn("Initial directory sync failed", "error", err)
	}
	cancelSync()

	// 5. Jobs, announcements & dispatcher
	jobs := workers.NewJobRunner(ctx, logger, config.RemoteTimeout)
	fanout := workers.NewNotificationFanout(logger, chat, directory.MainChannel, config.RemoteTimeout)
	dispatcher := runtime.NewDispatcher(logger, directory, floor, hosting, chat, responder, fanout, jobs, runtime.DispatcherConfig{
		BotHandle: config.BotHandle,
		Admins:    internal.AdminSet(config.AdminIDs),
	})
	logger.Debug("Commands registered", "commands", dispatcher.Commands())

	// 6. Supervised workers
	health := workers.NewHealthMonitoringWorker(logger, config.HealthInterval)
	server := web.NewServer(logger, web.ServerConfig{
		Host:            config.Host,
		Port:            config.Port,
		SigningSecret:   config.SlackSigningSecret,
		ShutdownTimeout: config.ShutdownTimeout,
	}, dispatcher, health)
	if config.SlackSigningSecret == "" {
		logger.Warn("SLACK_SIGNING_SECRET is empty, commands are not authenticated")
	}

	sup := workers.NewSupervisor(logger).WithRestartDelay(config.RestartInterval)
	sup.Add(
		server,
		health,
		workers.NewDirectorySyncWorker(logger, directory, config.SyncInterval, config.RemoteTimeout),
	)

	// 7. Serve until a signal arrives
	// Run blocks until every worker returned, which only happens on shutdown.
	logger.Info("dcbot started", "address", server.Address(), "store", config.StoreDriver)
	sup.Run(ctx)

	// 8. Graceful shutdown
	// The HTTP server is closed, jobs already started may still reply.
	logger.Info("Waiting for in-flight jobs...")
	jobs.Wait()
	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

func openStore(ctx context.Context, config internal.Config, logger *slog.Logger) (repositories.Store, error) {
	switch config.StoreDriver {
	case internal.StoreSQLite:
		store, err := sqlite.Open(config.SQLiteFilepath, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite opening failed: %w", err)
		}
		return store, nil
	default:
		store, err := repositories.OpenBadgerStore(config.BadgerFilepath, logger)
		if err != nil {
			return nil, fmt.Errorf("database opening failed: %w", err)
		}
		if logger.Enabled(ctx, slog.LevelDebug) {
			endpoint := "/inspect"
			logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
			database.StartDebugServer(store.DB(), config.DebugPort, endpoint, RecordMapper)
		}
		return store, nil
	}
}

// RecordMapper shows decoded records in the badger inspector.
func RecordMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	row.Type, row.Detail = repositories.DescribeRecord(key, val)
	return row
}
