package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version int             `toml:"version"`
	Browser BrowserSettings `toml:"browser"`
	Fetch   FetchSettings   `toml:"fetch"`
	Server  ServerSettings  `toml:"server"`
}

// BrowserSettings configures the terminal browser
type BrowserSettings struct {
	BaseURL        string `toml:"base_url"`
	Collection     string `toml:"collection"`
	LogFile        string `toml:"log_file"`
	RequestTimeout string `toml:"request_timeout"` // Go duration, "0s" keeps the transport default
}

// Timeout parses RequestTimeout, treating empty or invalid values as zero
func (b BrowserSettings) Timeout() time.Duration {
	if b.RequestTimeout == "" {
		return 0
	}
	d, err := time.ParseDuration(b.RequestTimeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// FetchSettings controls reconciliation of overlapping requests
type FetchSettings struct {
	DiscardStale bool `toml:"discard_stale"`
}

// ServerSettings configures the reference collection service
type ServerSettings struct {
	Addr        string   `toml:"addr"`
	Driver      string   `toml:"driver"` // sqlite or mysql
	DSN         string   `toml:"dsn"`
	CSV         string   `toml:"csv"`
	PerPage     int      `toml:"per_page"`
	CORSOrigins []string `toml:"cors_origins"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service using the per-user config file
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "pokebrowse", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so keys missing in the file keep sane values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Browser: BrowserSettings{
			BaseURL:        "http://localhost:5000",
			Collection:     "pokemons",
			LogFile:        "pokebrowse.log",
			RequestTimeout: "0s",
		},
		Fetch: FetchSettings{
			DiscardStale: true,
		},
		Server: ServerSettings{
			Addr:        ":5000",
			Driver:      "sqlite",
			DSN:         "pokemons.db",
			PerPage:     10,
			CORSOrigins: []string{"*"},
		},
	}
}

// normalize restores defaults for values a config file blanked out
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.Browser.BaseURL == "" {
		c.Browser.BaseURL = def.Browser.BaseURL
	}
	if c.Browser.Collection == "" {
		c.Browser.Collection = def.Browser.Collection
	}
	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}
	if c.Server.Driver == "" {
		c.Server.Driver = def.Server.Driver
	}
	if c.Server.PerPage <= 0 {
		c.Server.PerPage = def.Server.PerPage
	}
}
