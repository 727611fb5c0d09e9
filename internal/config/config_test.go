package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Environment != "development" {
		t.Errorf("environment = %q, want development", cfg.Environment)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("server port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Token.AccessTokenTTL != 24*time.Hour {
		t.Errorf("access TTL = %v, want 24h", cfg.Token.AccessTokenTTL)
	}
	if cfg.Token.RefreshTokenTTL != 360*time.Hour {
		t.Errorf("refresh TTL = %v, want 360h", cfg.Token.RefreshTokenTTL)
	}
	if cfg.Server.SecureCookies {
		t.Error("secure cookies should be off in development")
	}
}

func TestLoadMissingSecretFails(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ATTENDANCE_TOKEN_SECRET", "")

	if _, err := Load(""); err == nil {
		t.Fatal("Load succeeded without a signing secret")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	data := []byte(`
environment: production
server:
  port: 8080
token:
  secret: file-secret
  access_token_ttl: 1h
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Token.Secret != "file-secret" {
		t.Errorf("secret not read from file")
	}
	if cfg.Token.AccessTokenTTL != time.Hour {
		t.Errorf("access TTL = %v, want 1h", cfg.Token.AccessTokenTTL)
	}
	if !cfg.Server.SecureCookies {
		t.Error("secure cookies should be forced on outside development")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("ATTENDANCE_SERVER_PORT", "9090")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server port = %d, want 9090 from env", cfg.Server.Port)
	}
	if cfg.Token.Secret != "env-secret" {
		t.Errorf("secret not taken from JWT_SECRET")
	}
}
