package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	NYTimes  NYTimesConfig
	Ingest   IngestConfig
	Auth     AuthConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type NYTimesConfig struct {
	APIKey        string
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

type IngestConfig struct {
	Enabled   bool
	Interval  time.Duration
	Source    string
	Sections  []string
	PageLimit int
	RawDir    string
}

type AuthConfig struct {
	JWTSecret string
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "newsfeed")
	v.SetDefault("DB_PASSWORD", "newsfeed")
	v.SetDefault("DB_NAME", "newsfeed")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("NYT_BASE_URL", "https://api.nytimes.com")
	v.SetDefault("NYT_TIMEOUT", "30s")
	v.SetDefault("NYT_RETRY_ATTEMPTS", 3)
	v.SetDefault("NYT_RETRY_DELAY", "500ms")
	v.SetDefault("INGEST_ENABLED", true)
	v.SetDefault("INGEST_INTERVAL", "5m")
	v.SetDefault("INGEST_SOURCE", "all")
	v.SetDefault("INGEST_SECTIONS", "all")
	v.SetDefault("INGEST_PAGE_LIMIT", 100)
	v.SetDefault("RAW_DIR", "")
	v.SetDefault("AUTH_JWT_SECRET", "")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: parseDuration(v.GetString("DB_CONN_MAX_LIFETIME"), 30*time.Minute),
		},
		NYTimes: NYTimesConfig{
			APIKey:        v.GetString("NYT_API_KEY"),
			BaseURL:       v.GetString("NYT_BASE_URL"),
			Timeout:       parseDuration(v.GetString("NYT_TIMEOUT"), 30*time.Second),
			RetryAttempts: v.GetInt("NYT_RETRY_ATTEMPTS"),
			RetryDelay:    parseDuration(v.GetString("NYT_RETRY_DELAY"), 500*time.Millisecond),
		},
		Ingest: IngestConfig{
			Enabled:   v.GetBool("INGEST_ENABLED"),
			Interval:  parseDuration(v.GetString("INGEST_INTERVAL"), 5*time.Minute),
			Source:    v.GetString("INGEST_SOURCE"),
			Sections:  splitCSV(v.GetString("INGEST_SECTIONS")),
			PageLimit: v.GetInt("INGEST_PAGE_LIMIT"),
			RawDir:    v.GetString("RAW_DIR"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("AUTH_JWT_SECRET"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	if cfg.Ingest.Enabled && cfg.NYTimes.APIKey == "" {
		return nil, fmt.Errorf("NYT_API_KEY is required when ingest is enabled")
	}

	return cfg, nil
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
