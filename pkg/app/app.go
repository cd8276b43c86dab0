package app

import (
	"log/slog"

	"github.com/wlsc/accounts/pkg/config"
	"github.com/wlsc/accounts/pkg/currency"
	"github.com/wlsc/accounts/pkg/eventbus"
	repo "github.com/wlsc/accounts/pkg/repository/account"
	"github.com/wlsc/accounts/pkg/service/account"
)

// Deps contains the infrastructure the application is assembled from.
type Deps struct {
	Repository repo.Repository
	Converter  currency.Converter
	EventBus   eventbus.Bus
	Logger     *slog.Logger
}

type App struct {
	Deps           *Deps
	Config         *config.App
	AccountService *account.Service
}

// New wires the services over deps and registers the event handlers.
func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	if deps.EventBus != nil {
		SetupBus(deps.EventBus, deps.Logger)
	}
	app.AccountService = account.New(deps.Repository, deps.Converter, deps.EventBus, deps.Logger)
	return app
}
