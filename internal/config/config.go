package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Reporting ReportingConfig
	Alerts    AlertsConfig
	Archive   ArchiveConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

// DatabaseConfig selects the store. An empty URL means the in-memory store.
type DatabaseConfig struct {
	URL          string
	QueryTimeout time.Duration
}

// RedisConfig enables the report cache when Addr is set.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	ReportTTL time.Duration
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type ReportingConfig struct {
	Currency string
	Timezone string
}

// AlertsConfig drives the stock alert e-mail digest. It is disabled when To is empty.
type AlertsConfig struct {
	Cron             string
	From             string
	To               string
	SMTPServer       string
	SMTPPort         int
	SMTPUser         string
	SMTPPassword     string
	SMTPAuthDisabled bool
}

// ArchiveConfig drives the daily MongoDB report snapshot. It is disabled when MongoURI is empty.
type ArchiveConfig struct {
	MongoURI string
	MongoDB  string
	Cron     string
}

type LogConfig struct {
	Level string
}

var defaults = map[string]any{
	"app_port":           "8080",
	"shutdown_timeout":   "10s",
	"database_url":       "",
	"db_query_timeout":   "3s",
	"redis_addr":         "",
	"redis_password":     "",
	"redis_db":           0,
	"report_cache_ttl":   "5m",
	"rate_limit_rps":     1.0,
	"rate_limit_burst":   3,
	"currency":           "USD",
	"timezone":           "Local",
	"alerts_cron":        "0 8 * * *",
	"alerts_from":        "",
	"alerts_to":          "",
	"smtp_server":        "localhost",
	"smtp_port":          25,
	"smtp_user":          "",
	"smtp_password":      "",
	"smtp_auth_disabled": false,
	"mongodb_uri":        "",
	"mongodb_db_name":    "retail",
	"archive_cron":       "55 23 * * *",
	"log_level":          "info",
}

// Load reads a .env file when present, then resolves every setting from the
// environment, the optional config file and the defaults, in that order of precedence.
func Load(configFile string) (*Config, error) {
	// Missing .env files are fine when configuration comes from the environment.
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed reading config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString("app_port"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Database: DatabaseConfig{
			URL:          v.GetString("database_url"),
			QueryTimeout: v.GetDuration("db_query_timeout"),
		},
		Redis: RedisConfig{
			Addr:      v.GetString("redis_addr"),
			Password:  v.GetString("redis_password"),
			DB:        v.GetInt("redis_db"),
			ReportTTL: v.GetDuration("report_cache_ttl"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("rate_limit_rps"),
			Burst: v.GetInt("rate_limit_burst"),
		},
		Reporting: ReportingConfig{
			Currency: strings.ToUpper(v.GetString("currency")),
			Timezone: v.GetString("timezone"),
		},
		Alerts: AlertsConfig{
			Cron:             v.GetString("alerts_cron"),
			From:             v.GetString("alerts_from"),
			To:               v.GetString("alerts_to"),
			SMTPServer:       v.GetString("smtp_server"),
			SMTPPort:         v.GetInt("smtp_port"),
			SMTPUser:         v.GetString("smtp_user"),
			SMTPPassword:     v.GetString("smtp_password"),
			SMTPAuthDisabled: v.GetBool("smtp_auth_disabled"),
		},
		Archive: ArchiveConfig{
			MongoURI: v.GetString("mongodb_uri"),
			MongoDB:  v.GetString("mongodb_db_name"),
			Cron:     v.GetString("archive_cron"),
		},
		Log: LogConfig{
			Level: v.GetString("log_level"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	if money.GetCurrency(c.Reporting.Currency) == nil {
		return fmt.Errorf("CURRENCY %q is not a known currency code", c.Reporting.Currency)
	}

	if _, err := time.LoadLocation(c.Reporting.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE %q: %w", c.Reporting.Timezone, err)
	}

	if c.Alerts.To != "" && c.Alerts.From == "" {
		return errors.New("ALERTS_FROM must be provided when ALERTS_TO is set")
	}

	return nil
}

// Location returns the reporting timezone. Validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Reporting.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
