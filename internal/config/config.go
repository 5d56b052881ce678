package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Inventory holds all configuration for the inventory daemon.
type Inventory struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Account whose snapshot is tracked (one desktop install = one account)
	AccountID string `yaml:"account_id"`

	// Translation language (BCP 47: en, fr, de, ja)
	Language string `yaml:"language"`

	// Database
	Database DatabaseConfig `yaml:"database"`

	// Messaging channel to the game data reader
	IPC IPCConfig `yaml:"ipc"`

	// Store behaviour
	ClearInventoryOnStartup bool          `yaml:"clear_inventory_on_startup"`
	EffectTimeout           time.Duration `yaml:"effect_timeout"` // per repository call (default: 5s)

	// Character roster
	RosterRefreshInterval time.Duration `yaml:"roster_refresh_interval"` // 0 = load once
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// IPCConfig describes the websocket endpoint publishing game notifications.
// An empty URL disables the bridge.
type IPCConfig struct {
	URL            string        `yaml:"url"`
	ReconnectDelay time.Duration `yaml:"reconnect_delay"`
}

// Default returns Inventory config with sensible defaults.
func Default() Inventory {
	return Inventory{
		LogLevel:                "info",
		AccountID:               "default",
		Language:                "en",
		ClearInventoryOnStartup: false,
		EffectTimeout:           5 * time.Second,
		RosterRefreshInterval:   time.Minute,
		IPC: IPCConfig{
			URL:            "ws://127.0.0.1:14500/ipc",
			ReconnectDelay: 2 * time.Second,
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "invfacade",
			Password: "invfacade",
			DBName:   "invfacade",
			SSLMode:  "disable",
		},
	}
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Inventory, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.AccountID == "" {
		return cfg, fmt.Errorf("config %s: account_id is required", path)
	}

	return cfg, nil
}
