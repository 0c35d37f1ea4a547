package config // package config loads application configuration from environment variables

import (
	"crypto/rand"
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	DBUser        string // database username
	DBPass        string // database password (optional)
	DBHost        string // database host address
	DBPort        string // database port number
	DBName        string // database name
	AutoMigrate   bool   // create tables on startup
	LogLevel      string // zerolog level name
	LogFormat     string // json or console
	FlashSecret   []byte // HMAC key for flash notice cookies
	AMQPURL       string // RabbitMQ URL; empty disables activity events
	AdminUser     string // basic auth user for write routes
	AdminPassHash string // bcrypt hash; empty disables basic auth
}

// Load reads configuration values from environment variables.  Missing
// required variables are reported as an error so main can log and exit.
func Load() (Config, error) {
	cfg := Config{
		Env:           envStr("APP_ENV", "dev"),
		Port:          envStr("APP_PORT", "5000"),
		DBPass:        os.Getenv("DB_PASS"),
		DBPort:        envStr("DB_PORT", "3306"),
		AutoMigrate:   envBool("DB_AUTO_MIGRATE", true),
		LogLevel:      envStr("LOG_LEVEL", "info"),
		LogFormat:     envStr("LOG_FORMAT", "json"),
		AMQPURL:       firstNonEmpty(os.Getenv("AMQP_URL"), os.Getenv("RABBITMQ_URL")),
		AdminUser:     envStr("ADMIN_USER", "admin"),
		AdminPassHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
	var err error
	if cfg.DBUser, err = must("DB_USER"); err != nil {
		return Config{}, err
	}
	if cfg.DBHost, err = must("DB_HOST"); err != nil {
		return Config{}, err
	}
	if cfg.DBName, err = must("DB_NAME"); err != nil {
		return Config{}, err
	}
	if _, err := strconv.Atoi(cfg.DBPort); err != nil {
		return Config{}, fmt.Errorf("invalid int for DB_PORT: %q", cfg.DBPort)
	}
	if s := os.Getenv("FLASH_SECRET"); s != "" {
		cfg.FlashSecret = []byte(s)
	} else {
		// notices only need to survive one redirect, so a per-process key is enough
		cfg.FlashSecret = make([]byte, 32)
		if _, err := rand.Read(cfg.FlashSecret); err != nil {
			return Config{}, fmt.Errorf("generate flash secret: %w", err)
		}
	}
	return cfg, nil
}

// IsProduction reports whether the service runs with APP_ENV=prod.
func (c Config) IsProduction() bool {
	return c.Env == "prod" || c.Env == "production"
}

// must retrieves the value of a required environment variable.
func must(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("missing required env var: %s", key)
	}
	return v, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
