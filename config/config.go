package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Admin    AdminConfig
	AWS      AWSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
	// MaxUploadMB bounds the multipart memory buffer; larger parts spill to disk.
	MaxUploadMB int
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	URL      string // if set, used as-is (e.g. postgres://localhost:5432/studio?sslmode=disable)
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig holds Redis connection settings for the session store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SessionConfig holds admin session cookie settings.
type SessionConfig struct {
	Secret       string
	CookieSecure bool
	TTLHours     int
}

// AdminConfig is the single back-office credential. PasswordHash (bcrypt) wins over Password.
type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string
}

// AWSConfig holds media store credentials and bucket names.
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // optional S3-compatible endpoint (path-style addressing)
	PublicBaseURL   string // optional CDN/base URL for object links
	VideosBucket    string
	ImagesBucket    string
}

// DSN returns the PostgreSQL connection string.
// If DatabaseConfig.URL is set (e.g. DATABASE_URL env), it is used as-is; otherwise built from components.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

// Load reads configuration from environment, with optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8090"),
			ReadTimeout:  getEnvInt("READ_TIMEOUT_SEC", 30),
			WriteTimeout: getEnvInt("WRITE_TIMEOUT_SEC", 300),
			MaxUploadMB:  getEnvInt("MAX_UPLOAD_MEMORY_MB", 32),
		},
		Database: DatabaseConfig{
			URL:      getEnv("DATABASE_URL", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "studio"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			Secret:       getEnv("SESSION_SECRET", "change-this-in-production"),
			CookieSecure: getEnvBool("SESSION_COOKIE_SECURE", false),
			TTLHours:     getEnvInt("SESSION_TTL_HOURS", 24),
		},
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			Password:     os.Getenv("ADMIN_PASSWORD"),
			PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:        strings.TrimRight(getEnv("AWS_S3_ENDPOINT", ""), "/"),
			PublicBaseURL:   strings.TrimRight(getEnv("AWS_S3_PUBLIC_BASE_URL", ""), "/"),
			VideosBucket:    getEnv("AWS_S3_VIDEOS_BUCKET", "studio-portfolio-videos"),
			ImagesBucket:    getEnv("AWS_S3_IMAGES_BUCKET", "studio-blog-images"),
		},
	}
	if cfg.Admin.Password == "" && cfg.Admin.PasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}
	return cfg, nil
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
