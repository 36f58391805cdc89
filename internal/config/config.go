package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Port            string
	DBConn          string
	LogLevel        string
	MigrateOnStart  bool
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	SwaggerEnabled  bool

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string
}

// EmailEnabled reports whether credit confirmations should be mailed.
func (c *Config) EmailEnabled() bool {
	return c.SMTPHost != ""
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_CONN", "host=localhost port=5432 user=credit password=credit dbname=credit sslmode=disable")
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("MIGRATE_ON_START", true)
	v.SetDefault("READ_TIMEOUT", "10s")
	v.SetDefault("WRITE_TIMEOUT", "10s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("SWAGGER_ENABLED", true)
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", "587")
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SENDER_EMAIL", "")

	cfg := &Config{
		Port:            v.GetString("PORT"),
		DBConn:          v.GetString("DB_CONN"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		MigrateOnStart:  v.GetBool("MIGRATE_ON_START"),
		ReadTimeout:     v.GetDuration("READ_TIMEOUT"),
		WriteTimeout:    v.GetDuration("WRITE_TIMEOUT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		SwaggerEnabled:  v.GetBool("SWAGGER_ENABLED"),
		SMTPHost:        v.GetString("SMTP_HOST"),
		SMTPPort:        v.GetString("SMTP_PORT"),
		SMTPUsername:    v.GetString("SMTP_USERNAME"),
		SMTPPassword:    v.GetString("SMTP_PASSWORD"),
		SenderEmail:     v.GetString("SENDER_EMAIL"),
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT is required")
	}
	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.ReadTimeout <= 0 || cfg.WriteTimeout <= 0 {
		return nil, fmt.Errorf("READ_TIMEOUT and WRITE_TIMEOUT must be positive durations")
	}
	if cfg.EmailEnabled() && cfg.SenderEmail == "" {
		return nil, fmt.Errorf("SENDER_EMAIL is required when SMTP_HOST is set")
	}

	return cfg, nil
}
