package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the process-wide settings appkit programs read at startup.
type Config struct {
	DefaultBackend string
	LogLevel       string
	PollInterval   time.Duration
	Title          string
}

const (
	defaultConfigPath   = "~/.config/appkit/config.toml"
	defaultBackend      = "auto"
	defaultLogLevel     = "info"
	defaultPollInterval = 16 * time.Millisecond
	defaultTitle        = "appkit"
)

// Environment variables that override file values.
const (
	EnvBackend  = "APPKIT_BACKEND"
	EnvLogLevel = "APPKIT_LOG_LEVEL"
)

// raw mirrors the file layout; both TOML and YAML use snake_case keys.
type raw struct {
	DefaultBackend string `toml:"default_backend" yaml:"default_backend"`
	LogLevel       string `toml:"log_level" yaml:"log_level"`
	PollInterval   string `toml:"poll_interval" yaml:"poll_interval"`
	Title          string `toml:"title" yaml:"title"`
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		DefaultBackend: defaultBackend,
		LogLevel:       defaultLogLevel,
		PollInterval:   defaultPollInterval,
		Title:          defaultTitle,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
// Files ending in .yaml or .yml are parsed as YAML, anything else as TOML.
// Environment overrides are applied last.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			ApplyEnvOverrides(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var parsed raw
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &parsed)
	default:
		err = toml.Unmarshal(bytes, &parsed)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := merge(&cfg, parsed); err != nil {
		return Config{}, err
	}
	ApplyEnvOverrides(&cfg)
	return cfg, nil
}

func merge(cfg *Config, parsed raw) error {
	if v := strings.TrimSpace(parsed.DefaultBackend); v != "" {
		cfg.DefaultBackend = v
	}
	if v := strings.TrimSpace(parsed.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(parsed.PollInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse config: poll_interval: %w", err)
		}
		if d > 0 {
			cfg.PollInterval = d
		}
	}
	if v := strings.TrimSpace(parsed.Title); v != "" {
		cfg.Title = v
	}
	return nil
}

// ApplyEnvOverrides replaces fields with non-empty environment values.
func ApplyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvBackend)); v != "" {
		cfg.DefaultBackend = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
}

// SlogLevel maps LogLevel to a slog level. Unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
