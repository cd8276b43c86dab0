package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	_ "github.com/wlsc/accounts/docs"
	"github.com/wlsc/accounts/infra/initializer"
	"github.com/wlsc/accounts/pkg/app"
	"github.com/wlsc/accounts/pkg/config"
	"github.com/wlsc/accounts/webapi"
)

const shutdownTimeout = 10 * time.Second

// @title Accounts API
// @version 1.0.0
// @description In-memory account management and money transfer service.
// @description All amounts are integers in the smallest currency unit.
// @contact.name API Support
// @license.name Apache 2.0
// @host localhost:3000
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	fiberApp, err := setup(cfg)
	if err != nil {
		return err
	}

	logger := slog.Default()
	addr := cfg.Server.Addr()
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
		"api_version", cfg.API.Version,
	)

	errCh := make(chan error, 1)
	go func() { errCh <- fiberApp.Listen(addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := fiberApp.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return <-errCh
}

// setup initializes all dependencies and returns the Fiber app with every
// route and middleware registered.
func setup(cfg *config.App) (*fiber.App, error) {
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	return webapi.SetupApp(app.New(deps, cfg)), nil
}
