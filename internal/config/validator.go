package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks every setting and reports all problems at once
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if !slices.Contains(ValidLogLevels, c.LogLevel) {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of %s, got %q", strings.Join(ValidLogLevels, ", "), c.LogLevel))
	}
	if !slices.Contains(ValidLogFormats, c.LogFormat) {
		problems = append(problems, fmt.Sprintf("LOG_FORMAT must be one of %s, got %q", strings.Join(ValidLogFormats, ", "), c.LogFormat))
	}
	if !slices.Contains(ValidEnvironments, c.Environment) {
		problems = append(problems, fmt.Sprintf("ENVIRONMENT must be one of %s, got %q", strings.Join(ValidEnvironments, ", "), c.Environment))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		problems = append(problems, "DB_PATH must be set")
	}
	if strings.TrimSpace(c.EquipmentPath) == "" {
		problems = append(problems, "EQUIPMENT_PATH must be set")
	}
	if u, err := url.Parse(c.IconBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("ICON_BASE_URL must be an absolute URL, got %q", c.IconBaseURL))
	}
	if c.IconQuality < MinIconQuality || c.IconQuality > MaxIconQuality {
		problems = append(problems, fmt.Sprintf("ICON_QUALITY must be between %d and %d, got %d", MinIconQuality, MaxIconQuality, c.IconQuality))
	}
	if c.MaxRequestBytes <= 0 {
		problems = append(problems, "MAX_REQUEST_BYTES must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		problems = append(problems, "SHUTDOWN_TIMEOUT must be positive")
	}
	if c.AuditInterval < 0 {
		problems = append(problems, "AUDIT_INTERVAL must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Warnings returns non-fatal issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if len(c.Characters) == 0 {
		warnings = append(warnings, "CHARACTERS is empty - character selection lists will only show names found in records")
	}
	if c.Environment == "prod" && c.LogFormat != "json" {
		warnings = append(warnings, "LOG_FORMAT is not json in prod - structured log collectors may not parse output")
	}
	if c.Environment == "prod" && c.LogLevel == "debug" {
		warnings = append(warnings, "LOG_LEVEL is debug in prod")
	}

	return warnings
}
