package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where LoadConfig looks when no --config flag is given.
const DefaultPath = "configs/config.yaml"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port         string `yaml:"port" env:"SERVER_PORT"`
		Mode         string `yaml:"mode" env:"SERVER_MODE"`
		BaseURL      string `yaml:"base_url" env:"SERVER_BASE_URL"`
		ReadTimeout  string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		IdleTimeout  string `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Site struct {
		Name                string `yaml:"name" env:"SITE_NAME"`
		Tagline             string `yaml:"tagline" env:"SITE_TAGLINE"`
		Domain              string `yaml:"domain" env:"SITE_DOMAIN"`
		ContactEmail        string `yaml:"contact_email" env:"SITE_CONTACT_EMAIL"`
		ContactPhone        string `yaml:"contact_phone" env:"SITE_CONTACT_PHONE"`
		ContactLocation     string `yaml:"contact_location" env:"SITE_CONTACT_LOCATION"`
		ProgressiveSections bool   `yaml:"progressive_sections" env:"SITE_PROGRESSIVE_SECTIONS"`
	} `yaml:"site"`

	Application struct {
		RevertAfter        string  `yaml:"revert_after" env:"APPLICATION_REVERT_AFTER"`
		RateLimitPerMinute float64 `yaml:"rate_limit_per_minute" env:"APPLICATION_RATE_LIMIT_PER_MINUTE"`
		RateLimitBurst     int     `yaml:"rate_limit_burst" env:"APPLICATION_RATE_LIMIT_BURST"`
		NotifyEmail        string  `yaml:"notify_email" env:"APPLICATION_NOTIFY_EMAIL"`
	} `yaml:"application"`

	SMTP struct {
		Host      string `yaml:"host" env:"SMTP_HOST"`
		Port      int    `yaml:"port" env:"SMTP_PORT"`
		Username  string `yaml:"username" env:"SMTP_USERNAME"`
		Password  string `yaml:"password" env:"SMTP_PASSWORD"`
		FromName  string `yaml:"from_name" env:"SMTP_FROM_NAME"`
		FromEmail string `yaml:"from_email" env:"SMTP_FROM_EMAIL"`
		UseTLS    bool   `yaml:"use_tls" env:"SMTP_USE_TLS"`
	} `yaml:"smtp"`

	Jobs struct {
		EventStatusSchedule string `yaml:"event_status_schedule" env:"JOBS_EVENT_STATUS_SCHEDULE"`
		OngoingWindow       string `yaml:"ongoing_window" env:"JOBS_ONGOING_WINDOW"`
	} `yaml:"jobs"`

	OGImage struct {
		CacheMaxAge int `yaml:"cache_max_age" env:"OGIMAGE_CACHE_MAX_AGE"`
	} `yaml:"ogimage"`
}

// LoadConfig loads configuration from a file and environment variables. A
// .env file in the working directory, if any, is loaded first and never
// overrides variables that are already set.
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}
	setDefaults(config)

	if configPath == "" {
		configPath = DefaultPath
	}
	if file, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := loadFromEnv(config); err != nil {
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
	config.Server.BaseURL = "http://localhost:8080"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "10s"
	config.Server.IdleTimeout = "120s"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "kartavya"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Site.Name = "KARTAVYA"
	config.Site.Tagline = "NGO Incubator"
	config.Site.Domain = "kartavya.org"
	config.Site.ContactEmail = "info@kartavya.org"
	config.Site.ContactPhone = "+91 (555) 123-4567"
	config.Site.ContactLocation = "Mumbai, India"

	config.Application.RevertAfter = "5s"
	config.Application.RateLimitPerMinute = 5
	config.Application.RateLimitBurst = 3

	config.SMTP.Port = 587
	config.SMTP.FromName = "KARTAVYA"
	config.SMTP.UseTLS = true

	config.Jobs.OngoingWindow = "4h"

	config.OGImage.CacheMaxAge = 3600
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if config.Site.Name == "" {
		return fmt.Errorf("site name is required")
	}

	durations := map[string]string{
		"server.read_timeout":        config.Server.ReadTimeout,
		"server.write_timeout":       config.Server.WriteTimeout,
		"server.idle_timeout":        config.Server.IdleTimeout,
		"database.conn_max_lifetime": config.Database.ConnMaxLifetime,
		"application.revert_after":   config.Application.RevertAfter,
		"jobs.ongoing_window":        config.Jobs.OngoingWindow,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	if config.Application.RateLimitPerMinute <= 0 {
		return fmt.Errorf("application rate limit must be positive")
	}
	if config.Application.RateLimitBurst <= 0 {
		return fmt.Errorf("application rate limit burst must be positive")
	}
	if config.OGImage.CacheMaxAge < 0 {
		return fmt.Errorf("og image cache max age cannot be negative")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
