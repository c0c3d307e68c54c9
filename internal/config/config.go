package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	LPSAPI   LPSAPIConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Cookie   CookieConfig
	Web      WebConfig
	Log      LogConfig

	// EnvFileMissing is set when no .env file was found; logged once the logger is up
	EnvFileMissing bool
}

// LPSAPIConfig holds the upstream LPS backend configuration.
// There is exactly one origin; the client never guesses between hosts.
type LPSAPIConfig struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// RedisConfig holds redis configuration for the redis session store
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SessionConfig holds session configuration
type SessionConfig struct {
	Store     string // "mysql" or "redis"
	Secret    string
	TTL       time.Duration
	PurgeCron string
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// WebConfig holds the single-page app settings
type WebConfig struct {
	IndexFile string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level      string
	Format     string
	Output     string
	Path       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	envFileMissing := godotenv.Load() != nil

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		LPSAPI:   loadLPSAPIConfig(),
		Database: loadDatabaseConfig(appMode),
		Redis:    loadRedisConfig(),
		Session:  loadSessionConfig(appMode),
		Cookie:   loadCookieConfig(appMode),
		Web:      WebConfig{IndexFile: getEnv("WEB_INDEX_FILE", "./web/index.html")},
		Log:      loadLogConfig(appMode),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.EnvFileMissing = envFileMissing

	AppConfig = config
	return config, nil
}

func (c *Config) validate() error {
	if c.LPSAPI.BaseURL == "" {
		return fmt.Errorf("LPS_API_BASE_URL is required")
	}
	if c.Session.Store != "mysql" && c.Session.Store != "redis" {
		return fmt.Errorf("invalid SESSION_STORE: '%s' (must be 'mysql' or 'redis')", c.Session.Store)
	}
	if c.IsProd() && c.Session.Secret == "default_session_secret" {
		return fmt.Errorf("PROD_SESSION_SECRET must be set in prod mode")
	}
	return nil
}

// loadLPSAPIConfig loads upstream API config
func loadLPSAPIConfig() LPSAPIConfig {
	timeoutSecs, _ := strconv.Atoi(getEnv("LPS_API_TIMEOUT_SECONDS", "10"))
	retries, _ := strconv.Atoi(getEnv("LPS_API_MAX_RETRIES", "2"))
	backoffMs, _ := strconv.Atoi(getEnv("LPS_API_RETRY_BACKOFF_MS", "200"))

	if retries < 0 {
		retries = 0
	}

	return LPSAPIConfig{
		BaseURL:      strings.TrimRight(getEnv("LPS_API_BASE_URL", ""), "/"),
		Timeout:      time.Duration(timeoutSecs) * time.Second,
		MaxRetries:   retries,
		RetryBackoff: time.Duration(backoffMs) * time.Millisecond,
	}
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := modePrefix(mode)

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "lps_admin"),
	}
}

func loadRedisConfig() RedisConfig {
	db, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	return RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

// loadSessionConfig loads session config based on mode
func loadSessionConfig(mode string) SessionConfig {
	prefix := modePrefix(mode)
	ttlHours, _ := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "12"))
	if ttlHours < 1 {
		ttlHours = 12
	}

	return SessionConfig{
		Store:     strings.ToLower(getEnv("SESSION_STORE", "mysql")),
		Secret:    getEnv(prefix+"SESSION_SECRET", "default_session_secret"),
		TTL:       time.Duration(ttlHours) * time.Hour,
		PurgeCron: getEnv("SESSION_PURGE_CRON", "@every 30m"),
	}
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	prefix := modePrefix(mode)

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

func loadLogConfig(mode string) LogConfig {
	level, format := "debug", "text"
	if mode == "prod" {
		level, format = "info", "json"
	}

	maxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	maxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "7"))
	maxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "7"))
	compress, _ := strconv.ParseBool(getEnv("LOG_COMPRESS", "true"))

	return LogConfig{
		Level:      strings.ToLower(getEnv("LOG_LEVEL", level)),
		Format:     strings.ToLower(getEnv("LOG_FORMAT", format)),
		Output:     strings.ToLower(getEnv("LOG_OUTPUT", "stdout")),
		Path:       getEnv("LOG_PATH", "./logs"),
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   compress,
	}
}

func modePrefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://lps-admin.example.id"
	}
	return origins
}
