package config

import (
	"fmt"

	_ "github.com/joho/godotenv/autoload"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Env  string `envconfig:"APP_ENV" default:"development"`
	Port int    `envconfig:"APP_PORT" default:"3000"`

	// Optional Postgres DSN for export bookkeeping. When empty the server
	// runs without persistence and exports are tracked in memory only.
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// Access code for the resume builder. Empty disables the gate.
	AccessCode string `envconfig:"ACCESS_CODE"`

	Export ExportConfig
	SMTP   SMTPConfig
}

// ExportConfig controls PDF generation.
type ExportConfig struct {
	TemplateDir string `envconfig:"TEMPLATE_DIR" default:"templates"`
	OutputDir   string `envconfig:"EXPORT_DIR" default:"export-data"`
	ChromePath  string `envconfig:"CHROME_PATH"`
}

// SMTPConfig controls contact form delivery.
type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	Port     string `envconfig:"SMTP_PORT" default:"587"`
	User     string `envconfig:"SMTP_USER"`
	Password string `envconfig:"SMTP_PASS"`
	To       string `envconfig:"CONTACT_EMAIL"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) Validate() error {
	switch c.Env {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("invalid APP_ENV %q", c.Env)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid APP_PORT %d", c.Port)
	}
	return nil
}
