package bootstrap

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/go-arcade/roster/internal/app"
	"github.com/go-arcade/roster/pkg/log"
)

// InitAppFunc init app function type
type InitAppFunc func(configPath string) (*app.App, func(), error)

// Bootstrap init app, return App instance and cleanup function
func Bootstrap(configFile string, initApp InitAppFunc) (*app.App, func(), error) {
	a, cleanup, err := initApp(configFile)
	if err != nil {
		return nil, nil, err
	}

	l := log.With("config", a.Conf.Path())
	if a.WatchConfig() {
		l.Debugw("watching config file")
	}
	l.Debugw("roster initialized",
		"metrics", a.MetricsEnabled(),
		"members", a.Store.Len(),
	)
	return a, cleanup, nil
}

// Run calls fn with a context that is cancelled on an exit signal, then
// runs cleanup.
func Run(a *app.App, cleanup func(), fn func(ctx context.Context, a *app.App) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	defer cleanup()

	err := fn(ctx, a)
	if ctx.Err() != nil {
		log.Infow("received signal, shutting down")
	}
	return err
}

// Exec is Bootstrap followed by Run.
func Exec(configFile string, initApp InitAppFunc, fn func(ctx context.Context, a *app.App) error) error {
	a, cleanup, err := Bootstrap(configFile, initApp)
	if err != nil {
		return err
	}
	return Run(a, cleanup, fn)
}
