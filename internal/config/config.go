package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tasnim.dev/aws-reports/internal/log"
)

// PathEnvVar overrides the config file location.
const PathEnvVar = "AWS_REPORTS_CONFIG"

// Config holds optional defaults loaded from ~/.config/aws-reports/config.yaml.
type Config struct {
	DefaultProfile string `yaml:"default_profile"`
	DefaultRegion  string `yaml:"default_region"`
	DefaultOutput  string `yaml:"default_output"`
}

// Path returns the config file location, honoring AWS_REPORTS_CONFIG.
// Returns "" when no home directory can be determined.
func Path() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "aws-reports", "config.yaml")
}

// Load reads the config file. Returns zero-value Config if the file doesn't exist.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

func LoadFrom(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debugf("no config file at %s", path)
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	log.Debugf("using config file: %s", path)
	return &cfg, nil
}

// Merge applies CLI flag overrides. Flags take precedence over config defaults.
func (c *Config) Merge(profile, region string) (string, string) {
	p := c.DefaultProfile
	if profile != "" {
		p = profile
	}
	r := c.DefaultRegion
	if region != "" {
		r = region
	}
	return p, r
}

// Output returns the flag value when set, else the configured default.
func (c *Config) Output(flag string) string {
	if flag != "" {
		return flag
	}
	return c.DefaultOutput
}
