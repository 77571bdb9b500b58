package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port            int           `env:"PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	LogDir          string        `env:"LOG_DIR"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"albion-stats"`
	Version         string        `env:"VERSION" envDefault:"dev"`
	DBPath          string        `env:"DB_PATH" envDefault:"data/albion.db"`
	EquipmentPath   string        `env:"EQUIPMENT_PATH" envDefault:"configs/equipment.json"`
	CSVDir          string        `env:"CSV_DIR" envDefault:"data"`
	Characters      []string      `env:"CHARACTERS" envSeparator:"," envDefault:"Przdecenoura,CapetadeCenoura,GordoDeCenoura,FantasiaVH,MagoRossi,DPSdecenoura,Rlove"`
	IconBaseURL     string        `env:"ICON_BASE_URL" envDefault:"https://render.albiononline.com/v1/item/"`
	IconQuality     int           `env:"ICON_QUALITY" envDefault:"1"`
	MaxRequestBytes int64         `env:"MAX_REQUEST_BYTES" envDefault:"1048576"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// AuditInterval is how often the server re-checks stored builds against
	// the catalog. Zero disables the audit.
	AuditInterval time.Duration `env:"AUDIT_INTERVAL" envDefault:"1h"`

	// TrustedProxies may set X-Forwarded-For for rate limiting
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// Load loads the configuration from a .env file, if present, and the
// environment
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.Environment = strings.ToLower(strings.TrimSpace(c.Environment))

	roster := make([]string, 0, len(c.Characters))
	seen := make(map[string]bool, len(c.Characters))
	for _, name := range c.Characters {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		roster = append(roster, name)
	}
	c.Characters = roster

	proxies := c.TrustedProxies[:0]
	for _, p := range c.TrustedProxies {
		if p = strings.TrimSpace(p); p != "" {
			proxies = append(proxies, p)
		}
	}
	c.TrustedProxies = proxies

	if c.IconBaseURL != "" && !strings.HasSuffix(c.IconBaseURL, "/") {
		c.IconBaseURL += "/"
	}
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
