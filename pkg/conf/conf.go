package conf

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/go-arcade/roster/pkg/log"
)

/**
 * @file: conf.go
 * @description: viper backed configuration loading
 */

// Load layers configuration into cfg, lowest precedence first: the values
// already in defaults, the file at path (skipped when absent), then
// environment variables named <envPrefix>_<SECTION>_<KEY>. cfg must be a
// non-nil pointer. The returned viper instance can be handed to Watch.
func Load(path, envPrefix string, defaults, cfg any) (*viper.Viper, error) {
	cfgValue := reflect.ValueOf(cfg)
	if cfgValue.Kind() != reflect.Ptr || cfgValue.IsNil() {
		return nil, errors.New("cfg must be a pointer")
	}

	base, err := Marshal(defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to encode default configuration: %w", err)
	}

	vCfg := viper.New()
	vCfg.SetConfigType(Name)
	if err := vCfg.ReadConfig(bytes.NewReader(base)); err != nil {
		return nil, fmt.Errorf("failed to read default configuration: %w", err)
	}

	if envPrefix != "" {
		vCfg.SetEnvPrefix(envPrefix)
	}
	vCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vCfg.AutomaticEnv()

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			vCfg.SetConfigFile(path)
			if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
				vCfg.SetConfigType(ext)
			}
			if err := vCfg.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read configuration file: %w", err)
			}
			log.Debugw("configuration file loaded", "path", path)
		} else if os.IsNotExist(statErr) {
			log.Debugw("configuration file not found, using defaults", "path", path)
		} else {
			return nil, fmt.Errorf("failed to stat configuration file: %w", statErr)
		}
	}

	if err := vCfg.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration file: %w", err)
	}
	return vCfg, nil
}

// Watch calls onChange whenever the file behind vCfg changes. Viper's own
// reread drops the defaults layer, so onChange is expected to Load again.
// It reports false when vCfg was built without a file.
func Watch(vCfg *viper.Viper, onChange func(e fsnotify.Event)) bool {
	if vCfg == nil || vCfg.ConfigFileUsed() == "" {
		return false
	}
	vCfg.OnConfigChange(func(e fsnotify.Event) {
		log.Infow("configuration changed", "file", e.Name, "op", e.Op.String())
		onChange(e)
	})
	vCfg.WatchConfig()
	return true
}
