package bootstrap

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arcade/roster/internal/app"
	"github.com/go-arcade/roster/internal/config"
	"github.com/go-arcade/roster/internal/roster"
	"github.com/go-arcade/roster/pkg/log"
	"github.com/go-arcade/roster/pkg/metrics"
)

func fakeInit(cleaned *bool) InitAppFunc {
	return func(configPath string) (*app.App, func(), error) {
		m, err := config.NewManager(configPath)
		if err != nil {
			return nil, nil, err
		}
		store := roster.NewStore(nil, nil)
		a, cleanup, err := app.NewApp(m, log.NewNop(), store, roster.NewEditor(store),
			roster.NewLoader(store, roster.SampleSource, 0), metrics.NewRegistry(metrics.MetricsConfig{}), nil)
		if err != nil {
			return nil, nil, err
		}
		return a, func() { cleanup(); *cleaned = true }, nil
	}
}

func TestExec(t *testing.T) {
	var cleaned bool
	path := filepath.Join(t.TempDir(), "absent.toml")

	err := Exec(path, fakeInit(&cleaned), func(ctx context.Context, a *app.App) error {
		assert.Equal(t, path, a.Conf.Path())
		assert.False(t, a.MetricsEnabled())
		return a.Seed(ctx)
	})

	require.NoError(t, err)
	assert.True(t, cleaned)
}

func TestExec_PropagatesErrors(t *testing.T) {
	var cleaned bool
	boom := errors.New("boom")

	err := Exec(filepath.Join(t.TempDir(), "absent.toml"), fakeInit(&cleaned), func(context.Context, *app.App) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.True(t, cleaned)
}

func TestExec_InitFailure(t *testing.T) {
	boom := errors.New("init failed")
	err := Exec("", func(string) (*app.App, func(), error) {
		return nil, nil, boom
	}, func(context.Context, *app.App) error {
		t.Fatal("fn must not run")
		return nil
	})

	assert.ErrorIs(t, err, boom)
}
