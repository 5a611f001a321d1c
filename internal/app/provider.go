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

package app

import (
	"github.com/google/wire"

	"github.com/go-arcade/roster/internal/config"
	"github.com/go-arcade/roster/internal/roster"
	"github.com/go-arcade/roster/pkg/event"
	"github.com/go-arcade/roster/pkg/id"
	"github.com/go-arcade/roster/pkg/metrics"
)

// ProviderSet wires the roster core from configuration.
var ProviderSet = wire.NewSet(
	ProvideIDGenerator,
	event.NewEventBus,
	roster.ProviderSet,
	ProvideEditor,
	ProvideLoader,
	ProvideMetricsConfig,
	metrics.ProviderSet,
	ProvideRecorder,
	NewApp,
)

func ProvideIDGenerator(rc config.RosterConf) (id.Generator, error) {
	return id.NewGenerator(rc.IDStrategy)
}

func ProvideEditor(store *roster.Store, rc config.RosterConf) *roster.Editor {
	return roster.NewEditor(store, roster.WithDefaultBrand(rc.DefaultBrand))
}

func ProvideLoader(store *roster.Store, rc config.RosterConf) (*roster.Loader, error) {
	delay, err := rc.Delay()
	if err != nil {
		return nil, err
	}
	return roster.NewLoader(store, roster.SampleSource, delay), nil
}

func ProvideMetricsConfig(mc config.MetricsConf) metrics.MetricsConfig {
	return metrics.MetricsConfig{Enable: mc.Enable}
}

// ProvideRecorder attaches roster metrics to the store. The cleanup detaches
// them. A disabled registry yields a nil recorder.
func ProvideRecorder(reg *metrics.Registry, store *roster.Store) (*roster.Recorder, func(), error) {
	if !reg.Enabled() {
		return nil, func() {}, nil
	}
	rec, err := roster.NewRecorder(reg.Registerer())
	if err != nil {
		return nil, nil, err
	}
	detach := rec.Attach(store)
	return rec, detach, nil
}
