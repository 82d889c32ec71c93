// Package config loads userstorage settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/iudanet/userstorage/internal/userstorage"
)

// Environment variables
const (
	EnvBackend        = "USERSTORAGE_BACKEND"
	EnvDB             = "USERSTORAGE_DB"
	EnvPasswordPolicy = "USERSTORAGE_PASSWORD_POLICY"
	EnvLogLevel       = "USERSTORAGE_LOG_LEVEL"
	EnvLogFormat      = "USERSTORAGE_LOG_FORMAT"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendBolt   = "boltdb"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultEnvFile is read by Load when no file is given
const DefaultEnvFile = ".env"

// Config holds the storage backend, password policy and logging settings
type Config struct {
	Backend        string
	DBPath         string
	PasswordPolicy string
	LogLevel       string
	LogFormat      string
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Backend:        BackendSQLite,
		DBPath:         "userstorage.db",
		PasswordPolicy: string(userstorage.PasswordLinkOnly),
		LogLevel:       "info",
		LogFormat:      LogFormatText,
	}
}

// Load reads envFiles (or .env) into the process environment without
// overriding variables that are already set, then builds a Config from the
// environment on top of Default. Missing env files are ignored.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	def := Default()
	return Config{
		Backend:        getEnv(EnvBackend, def.Backend),
		DBPath:         getEnv(EnvDB, def.DBPath),
		PasswordPolicy: getEnv(EnvPasswordPolicy, def.PasswordPolicy),
		LogLevel:       getEnv(EnvLogLevel, def.LogLevel),
		LogFormat:      getEnv(EnvLogFormat, def.LogFormat),
	}, nil
}

// Validate checks that every setting has a supported value
func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendBolt:
	default:
		return fmt.Errorf("unknown backend %q (expected %q or %q)", c.Backend, BackendSQLite, BackendBolt)
	}

	if c.DBPath == "" {
		return fmt.Errorf("database path cannot be empty")
	}

	if _, err := userstorage.ParsePasswordPolicy(c.PasswordPolicy); err != nil {
		return err
	}

	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log format %q (expected %q or %q)", c.LogFormat, LogFormatText, LogFormatJSON)
	}

	return nil
}

// NewLogger creates a slog logger writing to w with the configured level and format
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	switch c.LogFormat {
	case LogFormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case LogFormatText, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", c.LogFormat)
	}
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("unknown log level %q: %w", s, err)
	}
	return level, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
