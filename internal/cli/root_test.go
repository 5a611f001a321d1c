// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arcade/roster/internal/app"
	"github.com/go-arcade/roster/internal/config"
	"github.com/go-arcade/roster/internal/roster"
	"github.com/go-arcade/roster/pkg/event"
	"github.com/go-arcade/roster/pkg/id"
	"github.com/go-arcade/roster/pkg/log"
	"github.com/go-arcade/roster/pkg/metrics"
)

// testInitApp mirrors the wire injector with a zero load delay.
func testInitApp(configPath string) (*app.App, func(), error) {
	m, err := config.NewManager(configPath)
	if err != nil {
		return nil, nil, err
	}
	store := roster.NewStore(id.NewTimestampGenerator(nil), event.NewEventBus())
	reg := metrics.NewRegistry(metrics.MetricsConfig{Enable: m.Current().Metrics.Enable})
	rec, detach, err := app.ProvideRecorder(reg, store)
	if err != nil {
		return nil, nil, err
	}
	a, cleanup, err := app.NewApp(m, log.NewNop(), store, roster.NewEditor(store),
		roster.NewLoader(store, roster.SampleSource, 0), reg, rec)
	if err != nil {
		detach()
		return nil, nil, err
	}
	return a, func() { cleanup(); detach() }, nil
}

func execute(t *testing.T, initApp func(string) (*app.App, func(), error), stdin string, args ...string) (string, error) {
	t.Helper()
	return executeWithConf(t, initApp, "", stdin, args...)
}

// executeWithConf writes confBody to a temp file; an empty body points at a
// file that does not exist.
func executeWithConf(t *testing.T, initApp func(string) (*app.App, func(), error), confBody, stdin string, args ...string) (string, error) {
	t.Helper()
	conf := filepath.Join(t.TempDir(), "config.toml")
	if confBody != "" {
		require.NoError(t, os.WriteFile(conf, []byte(confBody), 0o600))
	}
	root := NewRootCmd(initApp)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--conf", conf}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestList_Table(t *testing.T) {
	out, err := execute(t, testInitApp, "", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "john.doe")
	assert.Contains(t, out, "sarah.smith")
}

func TestList_QueryJSON(t *testing.T) {
	out, err := execute(t, testInitApp, "", "list", "-q", "FINANCE", "-o", "json")
	require.NoError(t, err)

	var members []roster.TeamMember
	require.NoError(t, sonic.UnmarshalString(out, &members))
	require.Len(t, members, 1)
	assert.Equal(t, "sarah.smith", members[0].Name)
	assert.Equal(t, roster.RoleFinance, members[0].Role)
}

func TestList_NoMatch(t *testing.T) {
	out, err := execute(t, testInitApp, "", "list", "-q", "nobody")
	require.NoError(t, err)
	assert.Contains(t, out, "No team members found")
}

func TestList_UnknownOutput(t *testing.T) {
	called := false
	initApp := func(path string) (*app.App, func(), error) {
		called = true
		return testInitApp(path)
	}

	_, err := execute(t, initApp, "", "list", "-o", "yaml")

	assert.EqualError(t, err, `unknown output format "yaml"`)
	assert.False(t, called)
}

func TestList_InitFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := execute(t, func(string) (*app.App, func(), error) {
		return nil, nil, boom
	}, "", "list")

	assert.ErrorIs(t, err, boom)
}

func TestShellCmd(t *testing.T) {
	confBody := "[roster]\nseedOnStart = false\n"
	out, err := executeWithConf(t, testInitApp, confBody, "add kim -r finance\nstats\nquit\n", "shell")
	require.NoError(t, err)

	assert.Contains(t, out, "added kim")
	assert.Contains(t, out, "roster_members 1")
	assert.Contains(t, out, `roster_mutations_total{op="add",result="applied"} 1`)
}

func TestConfigCmd(t *testing.T) {
	out, err := execute(t, testInitApp, "", "config")
	require.NoError(t, err)

	for _, section := range []string{"[log]", "[roster]", "[metrics]"} {
		assert.Contains(t, out, section)
	}
	assert.Contains(t, out, "idStrategy")
}

func TestList_SeedDisabled(t *testing.T) {
	out, err := executeWithConf(t, testInitApp, "[roster]\nseedOnStart = false\n", "", "list", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}
