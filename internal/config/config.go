// Package config loads the report tool's configuration from environment
// variables with an optional YAML file overlay. Defaults come from the
// struct tags, environment variables override them, and an explicit
// config file overrides both.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix namespaces the tool's environment variables, e.g.
// SPC_LOGGING_LEVEL.
const EnvPrefix = "SPC"

// Config is the complete tool configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"json"`
}

// ReportConfig controls which report sections the tool emits.
type ReportConfig struct {
	Charts      bool `yaml:"charts" envconfig:"CHARTS" default:"true"`
	Rules       bool `yaml:"rules" envconfig:"RULES" default:"true"`
	Capability  bool `yaml:"capability" envconfig:"CAPABILITY" default:"true"`
	Descriptive bool `yaml:"descriptive" envconfig:"DESCRIPTIVE" default:"true"`
}

// Load builds the configuration: struct tag defaults and environment
// variables first, then the YAML file at path as an overlay when path is
// non-empty. The result is validated before use.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid logging format %q", c.Logging.Format)
	}
	return nil
}
