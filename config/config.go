package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPublisherDomain = "gousto.co.uk"
	DefaultUserAgent       = "recipecard/1.0 (+https://github.com/pageza/recipecard)"
	DefaultMaxPageBytes    = 10 * 1024 * 1024
	DefaultAuditStream     = "recipecard:extractions"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string `yaml:"serverHost"`
	ServerPort string `yaml:"serverPort"`

	// Publisher is the single domain recipes may be fetched from. The
	// allow-list is this domain plus its www. variant.
	PublisherDomain string `yaml:"publisherDomain"`

	// Outbound fetch
	UserAgent    string `yaml:"userAgent"`
	MaxPageBytes int64  `yaml:"maxPageBytes"`

	// Browser origins allowed to call the API cross-origin. Empty disables CORS.
	CORSOrigins []string `yaml:"corsOrigins"`

	// Redis configuration for the optional audit stream
	RedisURL    string `yaml:"redisURL"`
	AuditStream string `yaml:"auditStream"`

	// Logging
	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`
}

// Default returns a Config populated with the values used when nothing else is set.
func Default() *Config {
	format := "json"
	if IsDevelopment() {
		format = "console"
	}
	return &Config{
		ServerHost:      "0.0.0.0",
		ServerPort:      "8080",
		PublisherDomain: DefaultPublisherDomain,
		UserAgent:       DefaultUserAgent,
		MaxPageBytes:    DefaultMaxPageBytes,
		AuditStream:     DefaultAuditStream,
		LogLevel:        "info",
		LogFormat:       format,
	}
}

// LoadConfig builds the configuration from defaults, an optional YAML file
// named by CONFIG_FILE, environment variables and, in production, Docker secrets.
func LoadConfig() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := loadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}

	// Production deployments keep credentials in Docker secrets
	if IsProduction() {
		if url := readSecret("redis_url"); url != "" {
			cfg.RedisURL = url
		}
	}

	cfg.PublisherDomain = strings.ToLower(strings.TrimSpace(cfg.PublisherDomain))

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file %s does not exist", path)
		}
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) error {
	setString(&cfg.ServerHost, "SERVER_HOST")
	setString(&cfg.ServerPort, "SERVER_PORT")
	setString(&cfg.PublisherDomain, "PUBLISHER_DOMAIN")
	setString(&cfg.UserAgent, "USER_AGENT")
	setString(&cfg.RedisURL, "REDIS_URL")
	setString(&cfg.AuditStream, "AUDIT_STREAM")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.LogFormat, "LOG_FORMAT")

	if v := os.Getenv("MAX_PAGE_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return ValidationError{Field: "MAX_PAGE_BYTES", Message: "must be an integer"}
		}
		cfg.MaxPageBytes = n
	}

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORSOrigins = origins
	}

	return nil
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
