package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP  HTTPConfig  `yaml:"http"`
	Site  SiteConfig  `yaml:"site"`
	Leads LeadsConfig `yaml:"leads"`
	Stats StatsConfig `yaml:"stats"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// SiteConfig carries the landing page identity and the sales contact.
type SiteConfig struct {
	CompanyName     string `yaml:"companyName"`
	Tagline         string `yaml:"tagline"`
	WhatsAppPhone   string `yaml:"whatsAppPhone"`
	DefaultLocation string `yaml:"defaultLocation"`
}

// LeadsConfig controls the lead archive and its dispatch queue.
type LeadsConfig struct {
	Postgres    PostgresConfig `yaml:"postgres"`
	Valkey      ValkeyConfig   `yaml:"valkey"`
	QueueKey    string         `yaml:"queueKey"`
	APIKey      string         `yaml:"apiKey"`
	RecentLimit int            `yaml:"recentLimit"`
}

// StatsConfig controls the quote counters shown on the landing page.
type StatsConfig struct {
	Valkey       ValkeyConfig `yaml:"valkey"`
	KeyPrefix    string       `yaml:"keyPrefix"`
	TopLocations int          `yaml:"topLocations"`
}

// ValkeyConfig contains connection information for Valkey-backed storage.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
		cfg.HTTP.AllowedOrigins = origins
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("SITE_COMPANY_NAME"); v != "" {
		cfg.Site.CompanyName = v
	}
	if v := os.Getenv("SITE_TAGLINE"); v != "" {
		cfg.Site.Tagline = v
	}
	if v := os.Getenv("SITE_WHATSAPP_PHONE"); v != "" {
		cfg.Site.WhatsAppPhone = v
	}
	if v := os.Getenv("SITE_DEFAULT_LOCATION"); v != "" {
		cfg.Site.DefaultLocation = v
	}
	if v := os.Getenv("LEADS_POSTGRES_DSN"); v != "" {
		cfg.Leads.Postgres.DSN = v
	}
	if v := os.Getenv("LEADS_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Leads.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("LEADS_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Leads.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("LEADS_VALKEY_ENABLED"); v != "" {
		cfg.Leads.Valkey.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("LEADS_VALKEY_ADDR"); v != "" {
		cfg.Leads.Valkey.Addr = v
	}
	if v := os.Getenv("LEADS_QUEUE_KEY"); v != "" {
		cfg.Leads.QueueKey = v
	}
	if v := os.Getenv("LEADS_API_KEY"); v != "" {
		cfg.Leads.APIKey = v
	}
	if v := os.Getenv("LEADS_RECENT_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Leads.RecentLimit = parsed
		}
	}
	if v := os.Getenv("STATS_VALKEY_ENABLED"); v != "" {
		cfg.Stats.Valkey.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("STATS_VALKEY_ADDR"); v != "" {
		cfg.Stats.Valkey.Addr = v
	}
	if v := os.Getenv("STATS_KEY_PREFIX"); v != "" {
		cfg.Stats.KeyPrefix = v
	}
	if v := os.Getenv("STATS_TOP_LOCATIONS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Stats.TopLocations = parsed
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Site: SiteConfig{
			CompanyName:     "SunVolt Solar",
			Tagline:         "Cut your electricity bill with rooftop solar",
			WhatsAppPhone:   "919876543210",
			DefaultLocation: "website form",
		},
		Leads: LeadsConfig{
			Postgres: PostgresConfig{
				DSN:      "",
				MaxConns: 4,
				MinConns: 0,
			},
			Valkey: ValkeyConfig{
				Enabled: false,
				Addr:    "",
			},
			QueueKey:    "solarsite:leads",
			APIKey:      "",
			RecentLimit: 50,
		},
		Stats: StatsConfig{
			Valkey: ValkeyConfig{
				Enabled: false,
				Addr:    "",
			},
			KeyPrefix:    "stats",
			TopLocations: 5,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if strings.TrimSpace(c.Site.CompanyName) == "" {
		return errors.New("site.companyName cannot be empty")
	}
	phone := strings.TrimSpace(c.Site.WhatsAppPhone)
	if phone == "" {
		return errors.New("site.whatsAppPhone cannot be empty")
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return errors.New("site.whatsAppPhone must be digits only with the country code first")
		}
	}
	c.Site.WhatsAppPhone = phone
	if strings.TrimSpace(c.Site.DefaultLocation) == "" {
		return errors.New("site.defaultLocation cannot be empty")
	}
	if c.Leads.Valkey.Enabled && strings.TrimSpace(c.Leads.Valkey.Addr) == "" {
		return errors.New("leads.valkey.addr cannot be empty when the lead queue is enabled")
	}
	if c.Leads.RecentLimit <= 0 {
		return errors.New("leads.recentLimit must be positive")
	}
	if c.Stats.Valkey.Enabled && strings.TrimSpace(c.Stats.Valkey.Addr) == "" {
		return errors.New("stats.valkey.addr cannot be empty when valkey counters are enabled")
	}
	if c.Stats.TopLocations < 0 {
		return errors.New("stats.topLocations cannot be negative")
	}
	return nil
}
