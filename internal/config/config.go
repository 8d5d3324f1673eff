// Package config handles the configuration directory, environment settings
// and logger construction.
package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	// AppName is the application directory name.
	AppName = "tasklist"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"
)

// Sync modes select the notifier fired when a task is added.
const (
	SyncLog    = "log"
	SyncNone   = "none"
	SyncGoogle = "google"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `env:"TASKLIST_CONFIG_DIR"`

	// Debug enables debug logging.
	Debug bool `env:"TASKLIST_DEBUG"`

	// Quiet suppresses informational output.
	Quiet bool `env:"TASKLIST_QUIET"`

	// Sync selects the add notifier: log, none or google.
	Sync string `env:"TASKLIST_SYNC" envDefault:"log"`

	// SyncList is the Google Tasks list added tasks are mirrored to.
	// Empty means the default list.
	SyncList string `env:"TASKLIST_SYNC_LIST"`

	// LogFile receives log output while the terminal UI owns the screen.
	LogFile string `env:"TASKLIST_LOG_FILE"`

	// Logger is built by the dispatcher; commands log through it.
	Logger *log.Logger
}

// New creates a Config from the environment, then applies configDir.
// If neither names a directory, uses XDG_CONFIG_HOME/tasklist or
// $HOME/.config/tasklist.
func New(configDir string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if configDir != "" {
		cfg.Dir = configDir
	}
	if cfg.Dir == "" {
		cfg.Dir = DefaultConfigDir()
	}
	if err := cfg.SetSync(cfg.Sync); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetSync validates and applies a sync mode.
func (c *Config) SetSync(mode string) error {
	mode = strings.ToLower(strings.TrimSpace(mode))
	switch mode {
	case "":
		mode = SyncLog
	case SyncLog, SyncNone, SyncGoogle:
	default:
		return fmt.Errorf("invalid sync mode: %s", mode)
	}
	c.Sync = mode
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// NewLogger returns a logger writing to w when Debug is set and discarding
// everything otherwise.
func (c *Config) NewLogger(w io.Writer) *log.Logger {
	if !c.Debug || w == nil {
		w = io.Discard
	}
	return log.New(w, AppName+": ", log.LstdFlags)
}

// Log returns Logger, or a discarding logger when none was set.
func (c *Config) Log() *log.Logger {
	if c.Logger == nil {
		c.Logger = log.New(io.Discard, "", 0)
	}
	return c.Logger
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}

// RemoveOAuthClient deletes the OAuth client credentials file.
func (c *Config) RemoveOAuthClient() error {
	return os.Remove(c.OAuthClientPath())
}
