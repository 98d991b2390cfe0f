package config

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all application configuration values
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Contact ContactConfig `yaml:"contact"`
	Site    SiteConfig    `yaml:"site"`
	CORS    CORSConfig    `yaml:"cors"`
	Limits  LimitsConfig  `yaml:"limits"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            string        `yaml:"port"             env:"PORT"                    env-default:"8080"`
	Mode            string        `yaml:"mode"             env:"GIN_MODE"                env-default:"release"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"0s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Human bool   `yaml:"human" env:"LOG_HUMAN" env-default:"false"`
}

// ContactConfig controls where enquiries are sent and how the form status resets.
type ContactConfig struct {
	Email            string        `yaml:"email"              env:"CONTACT_EMAIL"      env-default:"info@intellecta.uk"`
	WhatsAppNumber   string        `yaml:"whatsapp_number"    env:"WHATSAPP_NUMBER"`
	StatusResetDelay time.Duration `yaml:"status_reset_delay" env:"STATUS_RESET_DELAY" env-default:"2500ms"`
}

// SiteConfig holds presentation settings.
type SiteConfig struct {
	BaseURL      string        `yaml:"base_url"      env:"SITE_BASE_URL"  env-default:"https://intellecta.uk"`
	HeroInterval time.Duration `yaml:"hero_interval" env:"HERO_INTERVAL"  env-default:"4500ms"`
}

// CORSConfig holds the comma separated origin allowlist.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
}

// LimitsConfig throttles enquiry submissions per client IP.
type LimitsConfig struct {
	RatePerSecond float64 `yaml:"rate_per_second" env:"RATE_LIMIT_RPS"   env-default:"0.5"`
	Burst         int     `yaml:"burst"           env:"RATE_LIMIT_BURST" env-default:"5"`
}

// Origins splits the configured allowlist.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// LoadConfig reads configuration from an optional YAML file and environment variables.
// Priority: ENV > YAML > defaults. The file path comes from CONFIG_PATH (fallback "./config.yaml");
// a missing default file is not an error.
func LoadConfig() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks values cleanenv cannot express as tags.
func (c *Config) Validate() error {
	var errs []error
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("server.mode %q must be debug, release or test", c.Server.Mode))
	}
	if _, err := mail.ParseAddress(c.Contact.Email); err != nil {
		errs = append(errs, fmt.Errorf("contact.email %q: %w", c.Contact.Email, err))
	}
	if strings.Trim(c.Contact.WhatsAppNumber, "0123456789") != "" {
		errs = append(errs, fmt.Errorf("contact.whatsapp_number must contain digits only"))
	}
	if c.Contact.StatusResetDelay <= 0 {
		errs = append(errs, errors.New("contact.status_reset_delay must be positive"))
	}
	if c.Site.HeroInterval <= 0 {
		errs = append(errs, errors.New("site.hero_interval must be positive"))
	}
	if c.Limits.RatePerSecond <= 0 || c.Limits.Burst <= 0 {
		errs = append(errs, errors.New("limits must be positive"))
	}
	return errors.Join(errs...)
}
