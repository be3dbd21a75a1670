package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every setting is usable before the server starts.
func ValidateConfig(cfg *Config) error {
	var errors []string
	add := func(field, msg string) {
		errors = append(errors, ValidationError{Field: field, Message: msg}.Error())
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		add("SERVER_PORT", fmt.Sprintf("invalid port %q", cfg.ServerPort))
	}

	domain := cfg.PublisherDomain
	switch {
	case domain == "":
		add("PUBLISHER_DOMAIN", "is required")
	case strings.Contains(domain, "://") || strings.ContainsAny(domain, "/:@ "):
		add("PUBLISHER_DOMAIN", "must be a bare hostname")
	case strings.HasPrefix(domain, "www."):
		add("PUBLISHER_DOMAIN", "must not include the www. prefix")
	}

	if strings.TrimSpace(cfg.UserAgent) == "" {
		add("USER_AGENT", "is required")
	}

	if cfg.MaxPageBytes <= 0 {
		add("MAX_PAGE_BYTES", "must be positive")
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		add("LOG_LEVEL", fmt.Sprintf("unknown level %q", cfg.LogLevel))
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		add("LOG_FORMAT", "must be json or console")
	}

	if cfg.RedisURL != "" {
		if _, err := redis.ParseURL(cfg.RedisURL); err != nil {
			add("REDIS_URL", err.Error())
		}
		if cfg.AuditStream == "" {
			add("AUDIT_STREAM", "is required when REDIS_URL is set")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
