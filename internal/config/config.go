package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Storage struct {
		// Backend selects the key-value store: file, memory, redis or postgres.
		Backend     string `yaml:"backend" env:"STORAGE_BACKEND"`
		Path        string `yaml:"path" env:"STORAGE_PATH"`
		RedisURL    string `yaml:"redis_url" env:"STORAGE_REDIS_URL"`
		PostgresDSN string `yaml:"postgres_dsn" env:"STORAGE_POSTGRES_DSN"`
	} `yaml:"storage"`

	Session struct {
		Secret string `yaml:"secret" env:"SESSION_SECRET"`
		// Expiration is a duration string. "0" means sessions never expire.
		Expiration string `yaml:"expiration" env:"SESSION_EXPIRATION"`
		Issuer     string `yaml:"issuer" env:"SESSION_ISSUER"`
	} `yaml:"session"`

	Auth struct {
		// DebugBypass disables navigation redirects for design preview.
		DebugBypass bool `yaml:"debug_bypass" env:"AUTH_DEBUG_BYPASS"`
	} `yaml:"auth"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Storage.Backend = "file"
	config.Storage.Path = "./data"

	config.Session.Secret = ""
	config.Session.Expiration = "0"
	config.Session.Issuer = "signifi.app"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Session.Secret == "" {
		return fmt.Errorf("session secret is required")
	}

	if _, err := config.SessionExpiration(); err != nil {
		return fmt.Errorf("invalid session expiration format: %w", err)
	}

	switch config.Storage.Backend {
	case "file", "memory":
	case "redis":
		if config.Storage.RedisURL == "" {
			return fmt.Errorf("redis URL is required for the redis storage backend")
		}
	case "postgres":
		if config.Storage.PostgresDSN == "" {
			return fmt.Errorf("postgres DSN is required for the postgres storage backend")
		}
	default:
		return fmt.Errorf("unknown storage backend: %s", config.Storage.Backend)
	}

	return nil
}

// SessionExpiration parses the configured session lifetime. Zero means
// sessions never expire.
func (c *Config) SessionExpiration() (time.Duration, error) {
	if c.Session.Expiration == "" || c.Session.Expiration == "0" {
		return 0, nil
	}
	return time.ParseDuration(c.Session.Expiration)
}
