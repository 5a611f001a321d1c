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
	"github.com/google/wire"

	"github.com/go-arcade/roster/pkg/log"
)

// ProviderSet 提供配置层相关的依赖
var ProviderSet = wire.NewSet(
	ProvideManager,
	ProvideConf,
	ProvideLogConfig,
	ProvideRosterConfig,
	ProvideMetricsConfig,
)

func ProvideManager(configPath string) (*Manager, error) {
	return NewManager(configPath)
}

func ProvideConf(m *Manager) AppConfig {
	return m.Current()
}

func ProvideLogConfig(appConf AppConfig) *log.Conf {
	c := appConf.Log
	return &c
}

func ProvideRosterConfig(appConf AppConfig) RosterConf {
	return appConf.Roster
}

func ProvideMetricsConfig(appConf AppConfig) MetricsConf {
	return appConf.Metrics
}
