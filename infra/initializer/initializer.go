package initializer

import (
	"fmt"
	"log/slog"
	"os"

	infraeventbus "github.com/wlsc/accounts/infra/eventbus"
	"github.com/wlsc/accounts/infra/provider"
	infrarepo "github.com/wlsc/accounts/infra/repository/account"
	"github.com/wlsc/accounts/pkg/app"
	"github.com/wlsc/accounts/pkg/config"
	"github.com/wlsc/accounts/pkg/currency"
)

// InitializeDependencies builds the process-wide dependencies from cfg:
// the logger, the in-memory account store, the converter and the event bus.
// The returned logger also becomes the slog default.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	logger := NewLogger(cfg.Log, os.Stdout)
	slog.SetDefault(logger)

	converter, err := newConverter(cfg.Converter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize currency converter: %w", err)
	}

	return &app.Deps{
		Repository: infrarepo.NewMemory(),
		Converter:  converter,
		EventBus:   infraeventbus.NewWithMemory(logger),
		Logger:     logger,
	}, nil
}

func newConverter(cfg *config.Converter, logger *slog.Logger) (currency.Converter, error) {
	switch cfg.Strategy {
	case "", "identity":
		logger.Info("Using identity currency converter")
		return provider.NewIdentityConverter(), nil
	case "fixed":
		c, err := provider.NewFixedRateConverter(cfg.Rates)
		if err != nil {
			return nil, err
		}
		logger.Info("Using fixed rate currency converter", "pairs", len(cfg.Rates))
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported converter strategy %q", cfg.Strategy)
	}
}
