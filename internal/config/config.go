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

package config

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/go-arcade/roster/internal/roster"
	"github.com/go-arcade/roster/pkg/conf"
	"github.com/go-arcade/roster/pkg/duration"
	"github.com/go-arcade/roster/pkg/id"
	"github.com/go-arcade/roster/pkg/log"
)

// EnvPrefix prefixes environment overrides, e.g. ROSTER_LOG_LEVEL=debug.
const EnvPrefix = "ROSTER"

// DefaultPath is where the CLI looks for its configuration file.
const DefaultPath = "conf.d/config.toml"

type AppConfig struct {
	Log     log.Conf    `mapstructure:"log" toml:"log"`
	Roster  RosterConf  `mapstructure:"roster" toml:"roster"`
	Metrics MetricsConf `mapstructure:"metrics" toml:"metrics"`
}

type RosterConf struct {
	// IDStrategy is one of ulid, uuid, shortid, timestamp, xid.
	IDStrategy   string   `mapstructure:"idStrategy" toml:"idStrategy"`
	LoadDelay    string   `mapstructure:"loadDelay" toml:"loadDelay"`
	DefaultBrand string   `mapstructure:"defaultBrand" toml:"defaultBrand"`
	Brands       []string `mapstructure:"brands" toml:"brands"`
	SeedOnStart  bool     `mapstructure:"seedOnStart" toml:"seedOnStart"`
}

type MetricsConf struct {
	Enable bool `mapstructure:"enable" toml:"enable"`
}

// Defaults mirrors the sample screen: 1.5s simulated load of the sample roster.
func Defaults() AppConfig {
	logConf := log.SetDefaults()
	logConf.Output = "stderr"
	logConf.Level = "WARN"
	return AppConfig{
		Log: *logConf,
		Roster: RosterConf{
			IDStrategy:   id.StrategyULID,
			LoadDelay:    "1500ms",
			DefaultBrand: roster.DefaultBrand,
			Brands:       slices.Clone(roster.AvailableBrands),
			SeedOnStart:  true,
		},
		Metrics: MetricsConf{Enable: true},
	}
}

// Delay parses LoadDelay; empty means no delay.
func (r RosterConf) Delay() (time.Duration, error) {
	if strings.TrimSpace(r.LoadDelay) == "" {
		return 0, nil
	}
	d, err := duration.Parse(strings.TrimSpace(r.LoadDelay))
	if err != nil {
		return 0, fmt.Errorf("roster.loadDelay: %w", err)
	}
	return d, nil
}

func (c *AppConfig) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if _, err := id.NewGenerator(c.Roster.IDStrategy); err != nil {
		return fmt.Errorf("roster.idStrategy: %w", err)
	}
	if _, err := c.Roster.Delay(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Roster.DefaultBrand) == "" {
		c.Roster.DefaultBrand = roster.DefaultBrand
	}
	return nil
}

// Load reads the configuration at path on top of Defaults. A missing file is
// not an error.
func Load(path string) (AppConfig, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (AppConfig, *viper.Viper, error) {
	cfg := Defaults()
	v, err := conf.Load(path, EnvPrefix, Defaults(), &cfg)
	if err != nil {
		return AppConfig{}, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, v, nil
}

// Render returns cfg as TOML, suitable for writing to DefaultPath.
func Render(cfg AppConfig) ([]byte, error) {
	return conf.Marshal(cfg)
}

// Manager holds the live configuration and swaps it when the file changes.
type Manager struct {
	path string

	mu  sync.RWMutex
	cur AppConfig
	v   *viper.Viper
}

func NewManager(path string) (*Manager, error) {
	cfg, v, err := load(path)
	if err != nil {
		return nil, err
	}
	return &Manager{path: path, cur: cfg, v: v}, nil
}

func (m *Manager) Current() AppConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cur
}

// Path returns the file the manager was created for.
func (m *Manager) Path() string {
	return m.path
}

// Watch reloads on every file change and hands valid configurations to fn.
// Invalid edits are logged and ignored. Reports whether a file is watched.
func (m *Manager) Watch(fn func(AppConfig)) bool {
	return conf.Watch(m.v, func(fsnotify.Event) {
		cfg, _, err := load(m.path)
		if err != nil {
			log.Warnw("ignoring invalid configuration change", "path", m.path, "error", err)
			return
		}
		m.mu.Lock()
		m.cur = cfg
		m.mu.Unlock()
		if fn != nil {
			fn(cfg)
		}
	})
}
