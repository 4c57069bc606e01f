package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Runtime
	Env            string
	LogLevel       string
	Port           string
	MigrationsPath string
	Location       *time.Location

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Auth. An empty OwnerPasswordHash disables authentication.
	OwnerPasswordHash string
	JWTSecret         string
	JWTExpirationDur  time.Duration

	// Notifications
	OneSignalAppID        string
	OneSignalRESTKey      string
	WhatsAppToken         string
	WhatsAppPhoneNumberID string
	WhatsAppNotifyTo      string
	RelayAPIKey           string
	NotifyTimeout         time.Duration
	NotifyWorkers         int
	NotifyBuffer          int

	// Broker. An empty AMQPURL keeps delivery in-process.
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Dashboard
	DashboardRecentLimit int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Port:           getEnv("PORT", "8080"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "cashbook"),
		DBPassword: getEnv("DB_PASSWORD", "cashbook"),
		DBName:     getEnv("DB_NAME", "cashbook"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		OwnerPasswordHash: getEnv("OWNER_PASSWORD_HASH", ""),
		JWTSecret:         getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		OneSignalAppID:        getEnv("ONESIGNAL_APP_ID", ""),
		OneSignalRESTKey:      getEnv("ONESIGNAL_REST_API_KEY", ""),
		WhatsAppToken:         getEnv("WHATSAPP_TOKEN", ""),
		WhatsAppPhoneNumberID: getEnv("WHATSAPP_PHONE_NUMBER_ID", ""),
		WhatsAppNotifyTo:      getEnv("WHATSAPP_NOTIFY_TO", ""),
		RelayAPIKey:           getEnv("RELAY_API_KEY", ""),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "cashbook"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "notifications"),
	}

	// Parse JWT expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	if config.NotifyTimeout, err = parseDuration("NOTIFY_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if config.NotifyWorkers, err = parseInt("NOTIFY_WORKERS", 2); err != nil {
		return nil, err
	}
	if config.NotifyBuffer, err = parseInt("NOTIFY_BUFFER", 64); err != nil {
		return nil, err
	}
	if config.DashboardRecentLimit, err = parseInt("DASHBOARD_RECENT_LIMIT", 10); err != nil {
		return nil, err
	}

	tz := getEnv("TIMEZONE", "Local")
	config.Location, err = time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tz, err)
	}

	return config, nil
}

// Validate checks ranges and cross-field requirements. All problems are
// reported together.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.NotifyWorkers < 1 {
		problems = append(problems, "NOTIFY_WORKERS must be at least 1")
	}
	if c.NotifyBuffer < 0 {
		problems = append(problems, "NOTIFY_BUFFER cannot be negative")
	}
	if c.NotifyTimeout <= 0 {
		problems = append(problems, "NOTIFY_TIMEOUT must be positive")
	}
	if c.DashboardRecentLimit < 1 || c.DashboardRecentLimit > 100 {
		problems = append(problems, "DASHBOARD_RECENT_LIMIT must be between 1 and 100")
	}

	if c.AuthEnabled() && c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is required when OWNER_PASSWORD_HASH is set")
	}
	if c.Env == "production" && c.AuthEnabled() && c.JWTSecret == "fallback-secret-key-for-dev-only" {
		problems = append(problems, "JWT_SECRET must be set in production")
	}
	if c.AMQPURL != "" && (c.AMQPExchange == "" || c.AMQPQueue == "") {
		problems = append(problems, "AMQP_EXCHANGE and AMQP_QUEUE are required when AMQP_URL is set")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// AuthEnabled reports whether owner login is required.
func (c *Config) AuthEnabled() bool {
	return c.OwnerPasswordHash != ""
}

// DatabaseURL returns the postgres:// URL used by golang-migrate.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return d, nil
}

func parseInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return n, nil
}
