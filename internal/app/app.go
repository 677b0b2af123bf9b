package app

import (
	"fmt"
	"net/http"
	"os"

	"github.com/hance08/ledger/internal/config"
	"github.com/hance08/ledger/internal/remote"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/store"
	"github.com/pterm/pterm"
)

type App struct {
	Config  *config.Config
	Logger  *pterm.Logger
	Client  *remote.Client
	Store   *store.Store
	Service *service.Service
}

// NewApp wires the remote client, store and services from cfg and returns
// them with a cleanup func that releases idle connections.
func NewApp(cfg *config.Config) (*App, func(), error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	logger := pterm.DefaultLogger.
		WithLevel(level).
		WithWriter(os.Stderr).
		WithCaller(level == pterm.LogLevelTrace || level == pterm.LogLevelDebug)

	httpClient := &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()}

	client, err := remote.NewClient(cfg.Remote.BaseURL, httpClient, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize ledger client: %w", err)
	}

	st := store.New(client, logger)
	svc := service.NewService(st, service.Config{
		DefaultCurrency: cfg.Defaults.Currency,
		SyncConcurrency: cfg.Sync.Concurrency,
	}, logger)

	cleanup := func() {
		httpClient.CloseIdleConnections()
	}

	return &App{
		Config:  cfg,
		Logger:  logger,
		Client:  client,
		Store:   st,
		Service: svc,
	}, cleanup, nil
}

// Load builds the app from cfg in place, so that commands constructed before
// configuration is read can share the pointer.
func (a *App) Load(cfg *config.Config) (func(), error) {
	built, cleanup, err := NewApp(cfg)
	if err != nil {
		return nil, err
	}
	*a = *built
	return cleanup, nil
}
