// Package config loads application settings from an optional .env file and
// the process environment. None of these values affect the settings store.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/gorm/logger"
)

const (
	EnvDBPath      = "RAGSETTINGS_DB_PATH"
	EnvLogLevel    = "RAGSETTINGS_LOG_LEVEL"
	EnvWindowTitle = "RAGSETTINGS_WINDOW_TITLE"

	DefaultWindowTitle = "RAG Settings"
)

// Config holds the application shell configuration.
type Config struct {
	DBPath      string
	LogLevel    logger.LogLevel
	WindowTitle string
}

// Load reads .env from the project root when present, then the environment.
// A missing .env is not an error.
func Load() (Config, error) {
	if err := loadEnv(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	level, err := ParseLogLevel(os.Getenv(EnvLogLevel))
	if err != nil {
		return Config{}, err
	}

	title := strings.TrimSpace(os.Getenv(EnvWindowTitle))
	if title == "" {
		title = DefaultWindowTitle
	}

	return Config{
		DBPath:      strings.TrimSpace(os.Getenv(EnvDBPath)),
		LogLevel:    level,
		WindowTitle: title,
	}, nil
}

// ParseLogLevel maps silent|error|warn|info to a gorm log level.
// An empty value means warn.
func ParseLogLevel(s string) (logger.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warn", "warning":
		return logger.Warn, nil
	case "silent":
		return logger.Silent, nil
	case "error":
		return logger.Error, nil
	case "info":
		return logger.Info, nil
	default:
		return 0, fmt.Errorf("invalid %s %q: want silent, error, warn or info", EnvLogLevel, s)
	}
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func loadEnv() error {
	root, err := findProjectRoot()
	if err != nil {
		return err
	}
	envPath := filepath.Join(root, ".env")
	if _, err := os.Stat(envPath); err != nil {
		return err
	}
	return godotenv.Load(envPath)
}
