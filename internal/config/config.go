package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret           string `yaml:"secret"`
		Issuer           string `yaml:"issuer"`
		Audience         string `yaml:"audience"`
		AccessTTLMinutes int    `yaml:"access_ttl_minutes"`
		RefreshTTLDays   int    `yaml:"refresh_ttl_days"`
	} `yaml:"jwt"`

	Email struct {
		SMTPHost       string `yaml:"smtp_host"`
		SMTPPort       int    `yaml:"smtp_port"`
		SMTPUsername   string `yaml:"smtp_user"`
		SMTPPassword   string `yaml:"smtp_password"`
		FromEmail      string `yaml:"from_email"`
		FromName       string `yaml:"from_name"`
		TemplatesDir   string `yaml:"templates_dir"`
		WebsiteBaseURL string `yaml:"website_base_url"`
	} `yaml:"email"`

	RateLimit struct {
		General RateLimitPolicy `yaml:"general"`
		Auth    RateLimitPolicy `yaml:"auth"`
	} `yaml:"rate_limit"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

// RateLimitPolicy is a fixed window: Limit requests per Window seconds.
type RateLimitPolicy struct {
	Limit         int64 `yaml:"limit"`
	WindowSeconds int   `yaml:"window_seconds"`
}

func (p RateLimitPolicy) Window() time.Duration {
	return time.Duration(p.WindowSeconds) * time.Second
}

// Load reads config.yaml, or falls back to environment variables when
// DATABASE_URL is set (the mode used by CI and tests). The returned struct is
// injected into constructors; nothing reads configuration ambiently after
// startup.
func Load() (*Config, error) {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file at %s: %w", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file at %s: %w", configPath, err)
		}

		cfg.applyDefaults()
		return &cfg, cfg.validate()
	}

	log.Println("loading configuration from environment variables")

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.Issuer = os.Getenv("JWT_ISSUER")
	cfg.JWT.Audience = os.Getenv("JWT_AUDIENCE")

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("FROM_EMAIL")
	cfg.Email.WebsiteBaseURL = os.Getenv("WEBSITE_BASE_URL")

	cfg.applyDefaults()
	return &cfg, cfg.validate()
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 4000
	}
	if c.JWT.Issuer == "" {
		c.JWT.Issuer = "jobhunt-backend"
	}
	if c.JWT.Audience == "" {
		c.JWT.Audience = "jobhunt-frontend"
	}
	if c.JWT.AccessTTLMinutes == 0 {
		c.JWT.AccessTTLMinutes = 60
	}
	if c.JWT.RefreshTTLDays == 0 {
		c.JWT.RefreshTTLDays = 7
	}
	if c.RateLimit.General.Limit == 0 {
		c.RateLimit.General = RateLimitPolicy{Limit: 100, WindowSeconds: 60}
	}
	if c.RateLimit.Auth.Limit == 0 {
		c.RateLimit.Auth = RateLimitPolicy{Limit: 10, WindowSeconds: 60}
	}
}

// validate catches configuration errors at startup; a missing JWT secret is
// fatal here, never a runtime condition.
func (c *Config) validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database url is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt secret is required")
	}
	return nil
}

func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.JWT.AccessTTLMinutes) * time.Minute
}

func (c *Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.JWT.RefreshTTLDays) * 24 * time.Hour
}
