package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvBackend, "")
	t.Setenv(EnvLogLevel, "")
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Defaults() {
		t.Fatalf("Load = %+v, want %+v", cfg, Defaults())
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DefaultBackend != defaultBackend {
		t.Fatalf("DefaultBackend = %q, want %q", cfg.DefaultBackend, defaultBackend)
	}
}

func TestLoad_ParsesAndTrimsTOML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.toml", `
default_backend = "  Headless  "
log_level = " DEBUG "
poll_interval = "5ms"
title = "Viewer"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DefaultBackend != "Headless" {
		t.Fatalf("DefaultBackend = %q, want %q", cfg.DefaultBackend, "Headless")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.PollInterval != 5*time.Millisecond {
		t.Fatalf("PollInterval = %v, want 5ms", cfg.PollInterval)
	}
	if cfg.Title != "Viewer" {
		t.Fatalf("Title = %q, want %q", cfg.Title, "Viewer")
	}
}

func TestLoad_ParsesYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.yaml", `
default_backend: tea
log_level: warn
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DefaultBackend != "tea" {
		t.Fatalf("DefaultBackend = %q, want %q", cfg.DefaultBackend, "tea")
	}
	if cfg.SlogLevel() != slog.LevelWarn {
		t.Fatalf("SlogLevel = %v, want %v", cfg.SlogLevel(), slog.LevelWarn)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("PollInterval = %v, want default", cfg.PollInterval)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.toml", `
default_backend = "   "
log_level = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Defaults() {
		t.Fatalf("Load = %+v, want defaults", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv(EnvBackend, "gtk")
	t.Setenv(EnvLogLevel, "Error")
	path := writeConfig(t, "config.toml", `default_backend = "fyne"`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DefaultBackend != "gtk" {
		t.Fatalf("DefaultBackend = %q, want env value %q", cfg.DefaultBackend, "gtk")
	}
	if cfg.LogLevel != "error" {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, "error")
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, "config.toml", `default_backend = [`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidYAMLFails(t *testing.T) {
	path := writeConfig(t, "config.yml", "default_backend: [unterminated")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %v, want parse config error", err)
	}
}

func TestLoad_InvalidPollIntervalFails(t *testing.T) {
	path := writeConfig(t, "config.toml", `poll_interval = "soon"`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "poll_interval") {
		t.Fatalf("Load error = %v, want poll_interval error", err)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := (Config{LogLevel: tt.level}).SlogLevel(); got != tt.want {
				t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
