package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
	Paths       Paths       `yaml:"paths"`
	Events      Events      `yaml:"events"`
}

// Paths groups the filesystem locations the application writes to.
// Everything defaults to living under ~/.quadro.
type Paths struct {
	DataDir string `yaml:"data_dir"`
}

// Events configures the daemon connection
type Events struct {
	// DebounceMs is how long the event client batches publishes before
	// flushing them to the daemon
	DebounceMs int `yaml:"debounce_ms"`
}

// Debounce returns the configured batching window as a duration
func (e Events) Debounce() time.Duration {
	return time.Duration(e.DebounceMs) * time.Millisecond
}

// loadThemeFile loads and merges theme from QUADRO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("QUADRO_THEME_FILE")
	if themeFile == "" {
		return
	}

	if _, err := os.Stat(themeFile); err != nil {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig()
		loadThemeFile(config)
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := defaultConfig()
		loadThemeFile(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// DBPath returns the path to the sqlite database file
func (c *Config) DBPath() string {
	return filepath.Join(c.Paths.DataDir, "quadro.db")
}

// SocketPath returns the path to the daemon's unix socket
func (c *Config) SocketPath() string {
	return filepath.Join(c.Paths.DataDir, "quadro.sock")
}

// BoardDir returns the directory holding per-board column configuration files
func (c *Config) BoardDir() string {
	return filepath.Join(c.Paths.DataDir, "boards")
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "quadro", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "quadro", "config.yaml"), nil
}

func defaultConfig() *Config {
	config := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	config.Paths.applyDefaults()
	config.Events.applyDefaults()
	return config
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	c.Paths.applyDefaults()
	c.Events.applyDefaults()
}

func (p *Paths) applyDefaults() {
	if p.DataDir != "" {
		return
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		p.DataDir = filepath.Join(homeDir, ".quadro")
	}
}

func (e *Events) applyDefaults() {
	if e.DebounceMs <= 0 {
		e.DebounceMs = 100
	}
}
