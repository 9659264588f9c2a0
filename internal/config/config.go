package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

const appConfigDir = "bucket"

// DefaultServerURL is where a local Inbucket listens out of the box.
const DefaultServerURL = "http://localhost:9000"

// Server is the Inbucket instance to talk to. The password never lives in
// the config file; see internal/auth.
type Server struct {
	URL      string `toml:"url"`
	Username string `toml:"username"`
}

type Config struct {
	Server  Server   `toml:"server"`
	Mailbox string   `toml:"mailbox"`
	Theme   Theme    `toml:"theme"`
	UI      UIConfig `toml:"ui"`
	Keys    KeyMap   `toml:"keys"`
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(appConfigDir, "config.toml"))
}

// Load reads the config file from disk. A missing file yields defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := &Config{}
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyEnv()
	return &cfg, nil
}

// applyEnv lets BUCKET_URL override the configured server.
func (c *Config) applyEnv() {
	if url := strings.TrimSpace(os.Getenv("BUCKET_URL")); url != "" {
		c.Server.URL = url
	}
}

// ServerURL returns the configured server URL without a trailing slash.
func (c *Config) ServerURL() string {
	url := strings.TrimSpace(c.Server.URL)
	if url == "" {
		url = DefaultServerURL
	}
	return strings.TrimRight(url, "/")
}

// Save writes the config to disk
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

func SaveFile(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
