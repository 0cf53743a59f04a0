package config

import (
	"github.com/posline/pos-report-service/internal/logger"
)

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ReadTimeoutSec  int `mapstructure:"readTimeoutSec"`
	WriteTimeoutSec int `mapstructure:"writeTimeoutSec"`
}

// DatabaseConfig holds fallback values for per-request credential resolution.
// The actual credentials arrive in request headers; only host and port have
// server-side defaults.
type DatabaseConfig struct {
	DefaultHost       string `mapstructure:"defaultHost"`
	DefaultPort       int    `mapstructure:"defaultPort"`
	ConnectTimeoutSec int    `mapstructure:"connectTimeoutSec"`
}

type Config struct {
	Server   ServerConfig        `mapstructure:"server"`
	Logger   logger.LoggerConfig `mapstructure:"logger"`
	Database DatabaseConfig      `mapstructure:"database"`
}

// SetDefaults fills zero values so a minimal config.yaml still works.
func (c *Config) SetDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeoutSec == 0 {
		c.Server.ReadTimeoutSec = 15
	}
	if c.Server.WriteTimeoutSec == 0 {
		c.Server.WriteTimeoutSec = 30
	}
	if c.Database.DefaultHost == "" {
		c.Database.DefaultHost = "localhost"
	}
	if c.Database.DefaultPort == 0 {
		c.Database.DefaultPort = 3306
	}
	if c.Database.ConnectTimeoutSec == 0 {
		c.Database.ConnectTimeoutSec = 5
	}
}
