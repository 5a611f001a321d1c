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

package log

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConf(t *testing.T) {
	conf := SetDefaults()

	assert.Equal(t, "stdout", conf.Output)
	assert.Equal(t, "INFO", conf.Level)
	assert.Equal(t, 7, conf.KeepHours)
}

func TestConf_Validate(t *testing.T) {
	tests := []struct {
		name    string
		conf    *Conf
		wantErr bool
	}{
		{
			name:    "valid stdout config",
			conf:    &Conf{Output: "stdout", Level: "INFO"},
			wantErr: false,
		},
		{
			name: "valid file config",
			conf: &Conf{
				Output:     "file",
				Path:       "/tmp/logs",
				Level:      "DEBUG",
				KeepHours:  7,
				RotateSize: 100,
				RotateNum:  10,
			},
			wantErr: false,
		},
		{
			name:    "invalid file config - missing path",
			conf:    &Conf{Output: "file", Level: "INFO"},
			wantErr: true,
		},
		{
			name:    "file config with auto-correction",
			conf:    &Conf{Output: "file", Path: "/tmp/logs", Level: "INFO"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.conf.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.conf.Output == "file" {
				assert.Positive(t, tt.conf.RotateSize)
				assert.Positive(t, tt.conf.RotateNum)
				assert.Positive(t, tt.conf.KeepHours)
			}
		})
	}
}

func TestNewLog_Stdout(t *testing.T) {
	logger, err := NewLog(&Conf{Output: "stdout", Level: "DEBUG"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.Info("test message")
}

func TestNewLog_File(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := NewLog(&Conf{
		Output:     "file",
		Path:       tmpDir,
		Filename:   "test.log",
		Level:      "INFO",
		KeepHours:  1,
		RotateSize: 1,
		RotateNum:  3,
	})
	require.NoError(t, err)

	logger.Info("test message 1")
	logger.Debug("test message 2")
	logger.Warn("test message 3")
	_ = logger.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "test message 1")
	assert.NotContains(t, string(content), "test message 2")
	assert.Contains(t, string(content), "test message 3")
}

func TestGlobalLogFunctions(t *testing.T) {
	mu.Lock()
	sugar = nil
	logger = nil
	mu.Unlock()
	once = sync.Once{}

	// not initialized yet: the first call installs defaults
	Info("test info message")
	Debug("test debug message")
	Warn("test warn message")
	Error("test error message")

	mu.RLock()
	initialized := sugar != nil
	mu.RUnlock()
	assert.True(t, initialized, "global logger should be auto-initialized")
}

func TestGlobalLogFunctions_Structured(t *testing.T) {
	require.NoError(t, Init(SetDefaults()))

	Infow("formatted info", "value", "test")
	Debugw("formatted debug", "value", 123)
	Warnw("formatted warn", "count", 5)
	Errorw("formatted error", "error", "something went wrong")
	With("component", "test").Infow("child logger")
}

func TestSync(t *testing.T) {
	require.NoError(t, Init(SetDefaults()))
	Info("test message")
	assert.NoError(t, Sync())
}

func TestConcurrentLogging(t *testing.T) {
	require.NoError(t, Init(SetDefaults()))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			Infow("concurrent message", "number", n)
			Debugw("debug message", "number", n)
		}(i)
	}
	wg.Wait()
}

func TestGetLevel(t *testing.T) {
	require.NoError(t, Init(&Conf{Output: "stdout", Level: "warn"}))
	assert.Equal(t, zapcore.WarnLevel, GetLevel())

	require.NoError(t, Init(SetDefaults()))
	assert.Equal(t, zapcore.InfoLevel, GetLevel())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"DEBUG", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"WARN", zapcore.WarnLevel},
		{"WARNING", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
		{"FATAL", zapcore.FatalLevel},
		{" debug ", zapcore.DebugLevel},
		{"INVALID", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input))
		})
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	require.NotNil(t, l.Log)
	l.Log.Infow("discarded")
}
