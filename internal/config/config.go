// Package config resolves gigsim settings from defaults, an optional YAML
// file and GIGSIM_* environment variables, in that order.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/gigsim/internal/deadline"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DB       DBConfig       `yaml:"db"`
	Deadline DeadlineConfig `yaml:"deadline"`
	Log      LogConfig      `yaml:"log"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type DeadlineConfig struct {
	WarningHours   float64       `yaml:"warning_hours"`
	RenderMode     deadline.Mode `yaml:"render_mode"`
	RefreshSeconds int           `yaml:"refresh_seconds"`
}

type LogConfig struct {
	UseCases bool   `yaml:"use_cases"`
	Level    string `yaml:"level"`
}

// Default returns a Config with the database under homeDir/.gigsim.
func Default(homeDir string) Config {
	return Config{
		DB: DBConfig{Path: filepath.Join(homeDir, ".gigsim", "gigsim.db")},
		Deadline: DeadlineConfig{
			WarningHours:   deadline.DefaultWarningHours,
			RenderMode:     deadline.ModeCompact,
			RefreshSeconds: 1,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads configuration for the current user. A file named by
// GIGSIM_CONFIG must parse and validate; invalid environment values are
// ignored and the previous value is kept.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := Default(home)

	if path := os.Getenv("GIGSIM_CONFIG"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("GIGSIM_DB"); v != "" {
		cfg.DB.Path = v
	}
	if v := os.Getenv("GIGSIM_WARNING_HOURS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Deadline.WarningHours = f
		}
	}
	if v := os.Getenv("GIGSIM_RENDER_MODE"); v != "" {
		if m, err := deadline.ParseMode(v); err == nil {
			cfg.Deadline.RenderMode = m
		}
	}
	if v := os.Getenv("GIGSIM_REFRESH_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && validRefresh(n) {
			cfg.Deadline.RefreshSeconds = n
		}
	}
	if v := os.Getenv("GIGSIM_LOG_USE_CASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.UseCases = b
		}
	}
	if v := os.Getenv("GIGSIM_LOG_LEVEL"); v != "" {
		if _, err := parseLevel(v); err == nil {
			cfg.Log.Level = v
		}
	}
}

// Validate checks values that can only come from a config file.
func (c Config) Validate() error {
	if c.DB.Path == "" {
		return fmt.Errorf("db.path must not be empty")
	}
	if c.Deadline.WarningHours <= 0 {
		return fmt.Errorf("deadline.warning_hours must be positive, got %v", c.Deadline.WarningHours)
	}
	if _, err := deadline.ParseMode(string(c.Deadline.RenderMode)); err != nil {
		return fmt.Errorf("deadline.render_mode: %w", err)
	}
	if !validRefresh(c.Deadline.RefreshSeconds) {
		return fmt.Errorf("deadline.refresh_seconds must be between 1 and 60, got %d", c.Deadline.RefreshSeconds)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured log level.
func (c Config) SlogLevel() slog.Level {
	lvl, _ := parseLevel(c.Log.Level)
	return lvl
}

func validRefresh(n int) bool {
	return n >= 1 && n <= 60
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log.level: invalid value %q (debug|info|warn|error)", s)
	}
}
