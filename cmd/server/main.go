// Package main implements the entry point for the storefront API server,
// which serves the user, item catalog, cart, and order endpoints behind
// a stateless bearer-token authentication pipeline.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/davrell/storefront-api/internal/config"
	"github.com/davrell/storefront-api/internal/platform/logger"
	"github.com/davrell/storefront-api/internal/platform/postgres"
	"github.com/davrell/storefront-api/internal/service/auth"
	"github.com/davrell/storefront-api/internal/store"
)

// application bundles the process-wide dependencies, wired once at
// startup and injected into the router.
type application struct {
	config             *config.Config
	logger             *slog.Logger
	db                 *sql.DB
	userStore          store.UserStore
	itemStore          store.ItemStore
	cartStore          store.CartStore
	orderStore         store.OrderStore
	tokenService       auth.TokenService
	credentialVerifier auth.CredentialVerifier
}

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		app.logger.Error("server exited with error", "error", err)
	}
}

// initializeApp loads configuration and wires up application components.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db)

	return &application{
		config:             cfg,
		logger:             appLogger,
		db:                 db,
		userStore:          userStore,
		itemStore:          postgres.NewPostgresItemStore(db),
		cartStore:          postgres.NewPostgresCartStore(db),
		orderStore:         postgres.NewPostgresOrderStore(db),
		tokenService:       tokenService,
		credentialVerifier: auth.NewCredentialVerifier(userStore, auth.NewBcryptVerifier()),
	}, nil
}

// openDatabase connects to Postgres via the pgx stdlib driver and
// verifies the connection.
func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// cleanup releases process-wide resources at shutdown.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database", "error", err)
	}
}
