package config

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads .env files (the first one found among envFilePath, or ./.env)
// into the process environment and builds the App configuration from it.
// Variables already set in the environment take precedence.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Debug("Loading environment variables")

	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Debug("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	for _, path := range envFilePath {
		foundPath, err := FindEnvTest(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}
		logger.Info("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	logger.Debug("No valid environment files found, using process environment")
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"addr", cfg.Server.Addr(),
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"converter", cfg.Converter.Strategy,
		"api_version", cfg.API.Version,
	)
	return &cfg, nil
}

// Validate checks the loaded values against their declared constraints.
func (a *App) Validate() error {
	if err := validator.New().Struct(a); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if a.Converter.Strategy == "fixed" && len(a.Converter.Rates) == 0 {
		return fmt.Errorf("invalid configuration: CONVERTER_RATES is required for the fixed converter")
	}
	return nil
}
