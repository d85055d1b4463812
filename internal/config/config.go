package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage drivers accepted for the announcement durable slice.
const (
	StorageDriverFile     = "file"
	StorageDriverMemory   = "memory"
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port    string `yaml:"port" env:"SERVER_PORT"`
		Mode    string `yaml:"mode" env:"SERVER_MODE"`
		BaseURL string `yaml:"base_url" env:"SERVER_BASE_URL"`
	} `yaml:"server"`

	Session struct {
		Secret         string `yaml:"secret" env:"SESSION_SECRET"`
		Expiration     string `yaml:"expiration" env:"SESSION_EXPIRATION"`
		Issuer         string `yaml:"issuer" env:"SESSION_ISSUER"`
		CookieName     string `yaml:"cookie_name" env:"SESSION_COOKIE_NAME"`
		LoginDelay     string `yaml:"login_delay" env:"SESSION_LOGIN_DELAY"`
		DemoLoginDelay string `yaml:"demo_login_delay" env:"SESSION_DEMO_LOGIN_DELAY"`
	} `yaml:"session"`

	Storage struct {
		Driver            string `yaml:"driver" env:"STORAGE_DRIVER"`
		Dir               string `yaml:"dir" env:"STORAGE_DIR"`
		AnnouncementsKey  string `yaml:"announcements_key" env:"STORAGE_ANNOUNCEMENTS_KEY"`
		UploadDir         string `yaml:"upload_dir" env:"STORAGE_UPLOAD_DIR"`
		MaxDocumentSizeMB int    `yaml:"max_document_size_mb" env:"STORAGE_MAX_DOCUMENT_SIZE_MB"`
		MaxPictureSizeMB  int    `yaml:"max_picture_size_mb" env:"STORAGE_MAX_PICTURE_SIZE_MB"`
	} `yaml:"storage"`

	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
	} `yaml:"redis"`

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

	Export struct {
		QuoteCSV bool `yaml:"quote_csv" env:"EXPORT_QUOTE_CSV"`
	} `yaml:"export"`

	SMTP struct {
		Host     string `yaml:"host" env:"SMTP_HOST"`
		Port     int    `yaml:"port" env:"SMTP_PORT"`
		Username string `yaml:"username" env:"SMTP_USERNAME"`
		Password string `yaml:"password" env:"SMTP_PASSWORD"`
		From     string `yaml:"from" env:"SMTP_FROM"`
	} `yaml:"smtp"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// A missing file is fine, defaults and env still apply
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
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
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Session defaults
	config.Session.Expiration = "12h"
	config.Session.Issuer = "intlportal.app"
	config.Session.CookieName = "session_token"
	config.Session.LoginDelay = "1s"
	config.Session.DemoLoginDelay = "100ms"

	// Storage defaults
	config.Storage.Driver = StorageDriverFile
	config.Storage.Dir = "data"
	config.Storage.AnnouncementsKey = "globalAnnouncements"
	config.Storage.UploadDir = "uploads"
	config.Storage.MaxDocumentSizeMB = 10
	config.Storage.MaxPictureSizeMB = 5

	// Redis defaults
	config.Redis.Addr = "localhost:6379"

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "intlportal"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"

	// SMTP defaults
	config.SMTP.Port = 587
	config.SMTP.From = "international@university.edu"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Session.Secret == "" {
		return fmt.Errorf("session secret is required")
	}

	switch config.Storage.Driver {
	case StorageDriverFile:
		if config.Storage.Dir == "" {
			return fmt.Errorf("storage dir is required for the file driver")
		}
	case StorageDriverMemory, StorageDriverPostgres:
	case StorageDriverRedis:
		if config.Redis.Addr == "" {
			return fmt.Errorf("redis addr is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	if config.Storage.AnnouncementsKey == "" {
		return fmt.Errorf("storage announcements key is required")
	}

	durations := map[string]string{
		"session expiration":       config.Session.Expiration,
		"session login delay":      config.Session.LoginDelay,
		"session demo login delay": config.Session.DemoLoginDelay,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	if config.Storage.MaxDocumentSizeMB <= 0 || config.Storage.MaxPictureSizeMB <= 0 {
		return fmt.Errorf("upload size limits must be positive")
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

// PublicBaseURL returns the externally visible base URL of the server.
func (c *Config) PublicBaseURL() string {
	if c.Server.BaseURL != "" {
		return strings.TrimRight(c.Server.BaseURL, "/")
	}
	return "http://localhost:" + c.Server.Port
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
