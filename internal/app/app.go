package app

import (
	"context"

	"github.com/go-arcade/roster/internal/config"
	"github.com/go-arcade/roster/internal/roster"
	"github.com/go-arcade/roster/pkg/log"
	"github.com/go-arcade/roster/pkg/metrics"
)

type App struct {
	Conf *config.Manager
	// Logger is the logger built at startup. Configuration reloads swap the
	// package-level logger only.
	Logger  *log.Logger
	Store   *roster.Store
	Editor  *roster.Editor
	Loader  *roster.Loader
	Metrics *metrics.Registry
}

func NewApp(
	conf *config.Manager,
	logger *log.Logger,
	store *roster.Store,
	editor *roster.Editor,
	loader *roster.Loader,
	registry *metrics.Registry,
	_ *roster.Recorder,
) (*App, func(), error) {
	app := &App{
		Conf:    conf,
		Logger:  logger,
		Store:   store,
		Editor:  editor,
		Loader:  loader,
		Metrics: registry,
	}

	cleanup := func() {
		log.Debugw("roster closed", "members", store.Len())
		_ = log.Sync()
	}
	return app, cleanup, nil
}

// Seed performs the initial load when seedOnStart is set and the roster is
// still empty.
func (a *App) Seed(ctx context.Context) error {
	if !a.Conf.Current().Roster.SeedOnStart {
		return nil
	}
	return a.Loader.EnsureLoaded(ctx)
}

// WatchConfig re-initializes the package-level logger whenever the
// configuration file changes.
func (a *App) WatchConfig() bool {
	return a.Conf.Watch(func(c config.AppConfig) {
		if err := log.Init(&c.Log); err != nil {
			log.Warnw("keeping previous logger", "error", err)
		}
	})
}

func (a *App) MetricsEnabled() bool {
	return a.Metrics != nil && a.Metrics.Enabled()
}

// Brands returns the configured brand catalogue.
func (a *App) Brands() []string {
	return a.Conf.Current().Roster.Brands
}
