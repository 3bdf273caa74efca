package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/JonMunkholm/catalogo/internal/config"
	"github.com/JonMunkholm/catalogo/internal/core"
	"github.com/JonMunkholm/catalogo/internal/core/catalogs" // Register built-in catalogs
	"github.com/JonMunkholm/catalogo/internal/logging"
	"github.com/JonMunkholm/catalogo/internal/web"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded", "config", cfg.String())

	if err := catalogs.Configure(cfg.Sheets); err != nil {
		slog.Error("failed to configure catalogs", "error", err)
		os.Exit(1)
	}
	for _, def := range core.All() {
		slog.Info("catalog registered",
			"key", def.Key,
			"sheet_id", def.Sheet.SheetID,
			"sheet_name", def.Sheet.SheetName,
		)
	}

	ctx := context.Background()

	// Order log: PostgreSQL when configured, memory otherwise
	var orders core.OrderLog
	if cfg.Database.URL != "" {
		pool, err := connectDB(ctx, cfg.Database)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		pgLog := core.NewPgOrderLog(pool)
		if err := pgLog.EnsureSchema(ctx); err != nil {
			slog.Error("failed to prepare order log table", "error", err)
			os.Exit(1)
		}
		orders = pgLog
	} else {
		slog.Info("DATABASE_URL not set, order log kept in memory")
		orders = core.NewMemoryOrderLog(core.DefaultOrderHistoryLimit)
	}

	source := core.NewHTTPSheetSource(catalogs.SourceConfig(cfg.Sheets))
	service := core.NewService(source, core.NewSessionStore(), orders, core.ServiceConfig{
		StoreName:    cfg.Contacts.StoreName,
		Destinations: catalogs.Destinations(cfg.Contacts),
		Location:     cfg.Contacts.OrderLocation(),
	})

	server := web.NewServer(service, cfg)

	// Create cancellable context for background jobs
	jobCtx, cancelJobs := context.WithCancel(context.Background())

	go service.StartSessionSweeper(jobCtx, core.SweepConfig{
		TTL:           cfg.Session.TTL,
		CheckInterval: cfg.Session.SweepInterval,
	})

	// Graceful shutdown
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		// Stop background jobs
		cancelJobs()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}

		// Shared downloads run detached from requests; let them finish.
		limiter := source.Limiter()
		if active := limiter.ActiveCount(); active > 0 {
			slog.Info("waiting for sheet downloads to complete", "active", active)
			if err := limiter.WaitForDrain(shutdownCtx); err != nil {
				slog.Warn("sheet downloads did not complete in time", "error", err)
			}
		}
	}()

	if err := server.Start(); !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
	<-shutdownDone
	slog.Info("server stopped")
}

// connectDB opens and verifies the order log connection pool.
func connectDB(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	// Log which database we connected to
	if u, err := url.Parse(cfg.URL); err == nil {
		slog.Info("connected to database", "name", strings.TrimPrefix(u.Path, "/"))
	} else {
		slog.Info("connected to database")
	}
	return pool, nil
}
