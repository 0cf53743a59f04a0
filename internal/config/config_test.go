package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/posline/pos-report-service/internal/config"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestConfigLoad_FromYAML(t *testing.T) {
	yaml := `
server:
  port: 18080
  readTimeoutSec: 5
  writeTimeoutSec: 10

logger:
  level: info
  format: json
  env: prod

database:
  defaultHost: db.internal
  defaultPort: 3307
  connectTimeoutSec: 3
`
	path := writeTempConfig(t, yaml)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 18080 {
		t.Fatalf("expected server.port 18080, got %d", cfg.Server.Port)
	}
	if cfg.Database.DefaultHost != "db.internal" || cfg.Database.DefaultPort != 3307 {
		t.Fatalf("database defaults not loaded: %+v", cfg.Database)
	}
	if cfg.Database.ConnectTimeoutSec != 3 {
		t.Fatalf("connect timeout not loaded: %d", cfg.Database.ConnectTimeoutSec)
	}
}

func TestConfigLoad_DefaultsFillGaps(t *testing.T) {
	yaml := `
logger:
  level: info
`
	path := writeTempConfig(t, yaml)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Database.DefaultHost != "localhost" || cfg.Database.DefaultPort != 3306 {
		t.Fatalf("expected MySQL defaults, got %+v", cfg.Database)
	}
}

func TestConfigLoad_MissingFileFails(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
