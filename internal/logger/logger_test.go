package logger_test

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	logpkg "github.com/posline/pos-report-service/internal/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		config      *logpkg.LoggerConfig
		expectError bool
		wantLevel   zerolog.Level
	}{
		{
			name: "valid production environment",
			config: &logpkg.LoggerConfig{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Env:            "prod",
				Level:          "info",
				Format:         "json",
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "defaults fill an empty config",
			config:    &logpkg.LoggerConfig{Env: "prod"},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name: "invalid configuration - wrong env",
			config: &logpkg.LoggerConfig{
				ServiceName: "bad-service",
				Env:         "wrong-env",
				Level:       "debug",
				Format:      "json",
			},
			expectError: true,
		},
		{
			name: "invalid log level",
			config: &logpkg.LoggerConfig{
				ServiceName: "test-service",
				Env:         "prod",
				Level:       "invalid-level",
				Format:      "json",
			},
			expectError: true,
		},
		{
			name: "valid staging environment",
			config: &logpkg.LoggerConfig{
				ServiceName:    "test-service",
				ServiceVersion: "2.0.0",
				Env:            "staging",
				Level:          "warn",
				Format:         "json",
			},
			wantLevel: zerolog.WarnLevel,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := logpkg.New(test.config)
			if test.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.wantLevel, zerolog.GlobalLevel())
		})
	}

	t.Run("debug log file creation in dev", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "debug.log")
		config := &logpkg.LoggerConfig{
			ServiceName:  "integration-test",
			Env:          "dev",
			Level:        "debug",
			Format:       "console",
			DebugLogPath: path,
		}

		_, err := logpkg.New(config)
		assert.NoError(t, err)
		assert.FileExists(t, path)
	})
}
