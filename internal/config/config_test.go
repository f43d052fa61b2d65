package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Family.MaxParents != 2 {
		t.Errorf("max_parents = %d, want 2", cfg.Family.MaxParents)
	}
	if cfg.JWT.TTL() != 7*24*time.Hour {
		t.Errorf("jwt ttl = %v", cfg.JWT.TTL())
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
server:
  address: 127.0.0.1
  port: 9000
jwt:
  secret: from-file
  expire_hours: 2
store:
  seed_demo: true
`)
	t.Setenv("FB_SERVER_PORT", "9100")
	t.Setenv("FB_FAMILY_MAX_PARENTS", "3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.Server.Addr(); got != "127.0.0.1:9100" {
		t.Errorf("addr = %q, want 127.0.0.1:9100", got)
	}
	if cfg.JWT.Secret != "from-file" || cfg.JWT.TTL() != 2*time.Hour {
		t.Errorf("jwt = %+v", cfg.JWT)
	}
	if !cfg.Store.SeedDemo {
		t.Error("seed_demo not read from file")
	}
	if cfg.Family.MaxParents != 3 {
		t.Errorf("max_parents = %d, want 3", cfg.Family.MaxParents)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Server:   ServerConfig{Port: 8080, Mode: "debug"},
			JWT:      JWTConfig{Secret: "s", ExpireHours: 1},
			Security: SecurityConfig{BcryptCost: 10, ResetTokenTTLMinutes: 5},
			Family:   FamilyConfig{MaxParents: 2},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"unknown mode", func(c *Config) { c.Server.Mode = "prod" }, "server.mode"},
		{"empty secret", func(c *Config) { c.JWT.Secret = "" }, "jwt.secret is required"},
		{"dev secret in release", func(c *Config) { c.Server.Mode = "release"; c.JWT.Secret = devSecret }, "release mode"},
		{"bcrypt cost", func(c *Config) { c.Security.BcryptCost = 2 }, "bcrypt_cost"},
		{"max parents", func(c *Config) { c.Family.MaxParents = 0 }, "max_parents"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
