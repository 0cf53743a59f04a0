package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type LoggerConfig struct {
	Level          string                 `json:"level,omitempty" validate:"oneof=debug info warn error"`
	Format         string                 `json:"format,omitempty" validate:"oneof=json console"`
	TimeField      string                 `json:"timeField,omitempty"`
	TimeFormat     string                 `json:"timeFormat,omitempty"`
	ServiceName    string                 `json:"serviceName,omitempty"`
	ServiceVersion string                 `json:"serviceVersion,omitempty"`
	Env            string                 `json:"env,omitempty" validate:"oneof=dev staging prod"`
	WithCaller     bool                   `json:"withCaller,omitempty"`
	DebugLogPath   string                 `json:"debugLogPath,omitempty"`
	Fields         map[string]interface{} `json:"fields,omitempty"`
}

// New builds the root zerolog logger from config. Production environments get
// JSON on stdout; dev gets a console writer, optionally teeing debug output to
// a file so request traces survive the terminal scrollback.
func New(logg *LoggerConfig) (logger zerolog.Logger, err error) {
	logg.setDefaults()

	v := validator.New()
	if err = v.Struct(logg); err != nil {
		return logger, fmt.Errorf("logger config validation error: %w", err)
	}

	zerolog.TimestampFieldName = logg.TimeField
	zerolog.TimeFieldFormat = logg.TimeFormat

	var writer io.Writer = os.Stdout
	if logg.Env == "dev" {
		console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: logg.TimeFormat}
		writer = console
		if logg.Level == "debug" && logg.DebugLogPath != "" {
			if mkErr := os.MkdirAll(filepath.Dir(logg.DebugLogPath), 0755); mkErr == nil {
				if file, fErr := os.OpenFile(logg.DebugLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666); fErr == nil {
					writer = zerolog.MultiLevelWriter(console, file)
				}
			}
			// file problems fall back to console only; logging must not crash startup
		}
	}

	logger = zerolog.New(writer).
		With().
		Timestamp().
		Str("service", logg.ServiceName).
		Str("version", logg.ServiceVersion).
		Str("env", logg.Env).
		Logger()

	if logg.WithCaller {
		logger = logger.With().Caller().Logger()
	}
	if len(logg.Fields) > 0 {
		logger = logger.With().Fields(logg.Fields).Logger()
	}

	level, err := zerolog.ParseLevel(logg.Level)
	if err != nil {
		return logger, err
	}
	zerolog.SetGlobalLevel(level)

	return logger, nil
}

func (c *LoggerConfig) setDefaults() {
	if c.Env == "" {
		c.Env = "prod"
	}
	if c.Level == "" {
		if c.Env == "dev" {
			c.Level = "debug"
		} else {
			c.Level = "info"
		}
	}
	if c.Format == "" {
		if c.Env == "dev" {
			c.Format = "console"
		} else {
			c.Format = "json"
		}
	}
	if c.TimeField == "" {
		c.TimeField = "ts"
	}
	if c.TimeFormat == "" {
		c.TimeFormat = zerolog.TimeFormatUnixMs
	}
	if c.DebugLogPath == "" && c.Env == "dev" {
		c.DebugLogPath = "logs/debug.log"
	}
	if !c.WithCaller && c.Env == "dev" {
		c.WithCaller = true
	}
	if c.ServiceName == "" {
		c.ServiceName = "pos-report-service"
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = "0.0.1"
	}
	if c.Fields == nil {
		c.Fields = make(map[string]interface{})
	}
}
