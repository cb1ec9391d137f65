// Package config loads taskctl configuration from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/viant/taskmgr"
)

// PathEnv names the environment variable holding the config file location.
const PathEnv = "TASKCTL_CONFIG"

// Config is the CLI configuration.
// Sources by decreasing priority:
//  1. explicit --config path;
//  2. TASKCTL_CONFIG;
//  3. ~/.taskctl/config.yaml;
//  4. environment variables only.
//
// Environment variables always overlay values read from a file.
type Config struct {
	BaseURL  string        `yaml:"base_url" env:"TASKCTL_BASE_URL"`
	LogLevel string        `yaml:"log_level" env:"TASKCTL_LOG_LEVEL" env-default:"warn"`
	Timeout  time.Duration `yaml:"timeout" env:"TASKCTL_TIMEOUT" env-default:"30s"`
	Store    StoreConfig   `yaml:"store"`
}

// StoreConfig selects the credential store
type StoreConfig struct {
	Type      string `yaml:"type" env:"TASKCTL_STORE" env-default:"file"`
	URL       string `yaml:"url" env:"TASKCTL_STORE_URL"`
	Key       string `yaml:"key" env:"TASKCTL_STORE_KEY"`
	RedisAddr string `yaml:"redis_addr" env:"TASKCTL_REDIS_ADDR"`
	SSMName   string `yaml:"ssm_name" env:"TASKCTL_SSM_NAME"`
}

// ClientOptions converts the configuration into client options
func (c *Config) ClientOptions() *taskmgr.ClientOptions {
	return &taskmgr.ClientOptions{
		BaseURL: c.BaseURL,
		Timeout: c.Timeout,
		Store: taskmgr.ClientStore{
			Type:      c.Store.Type,
			URL:       c.Store.URL,
			Key:       c.Store.Key,
			RedisAddr: c.Store.RedisAddr,
			SSMName:   c.Store.SSMName,
		},
	}
}

// DefaultPath returns ~/.taskctl/config.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".taskctl", "config.yaml")
}

// Load reads configuration; a .env file in the working directory is loaded into the environment first.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg := &Config{}

	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path == "" {
		if defaultPath := DefaultPath(); defaultPath != "" {
			if _, err := os.Stat(defaultPath); err == nil {
				path = defaultPath
			}
		}
	}
	if path != "" {
		if err := read(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}
	return cfg, nil
}

func read(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config file %q stat failed: %w", path, err)
	}
	// ReadConfig overlays env variables after the file
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return fmt.Errorf("failed to read config %v: %w", path, err)
	}
	return nil
}
