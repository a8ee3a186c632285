package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL  string `envconfig:"DATABASE_URL" required:"true"`
	RedisURL     string `envconfig:"REDIS_URL" required:"true"`
	JWTSecretKey string `envconfig:"JWT_SECRET_KEY" required:"true"`
	CronSecret   string `envconfig:"CRON_SECRET" required:"true"`
	ServerPort   int    `envconfig:"SERVER_PORT" default:"8080"`

	DBAutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"false"`

	LogLevel           slog.Level `envconfig:"LOG_LEVEL" default:"info"`
	CORSAllowedOrigins []string   `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	SyncSchedule    string        `envconfig:"SYNC_SCHEDULE" default:"0 3 * * *"`
	SyncWindow      time.Duration `envconfig:"SYNC_WINDOW" default:"24h"`
	SyncConcurrency int           `envconfig:"SYNC_CONCURRENCY" default:"4"`

	// R2 настройки опциональны: без них экспорт расписаний отключен.
	R2AccountID       string `envconfig:"R2_ACCOUNT_ID"`
	R2AccessKeyID     string `envconfig:"R2_ACCESS_KEY_ID"`
	R2SecretAccessKey string `envconfig:"R2_SECRET_ACCESS_KEY"`
	R2BucketName      string `envconfig:"R2_BUCKET_NAME"`
	R2PublicBaseURL   string `envconfig:"R2_PUBLIC_BASE_URL"`
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	// Загружаем .env файл, если он есть. Ошибку не считаем фатальной.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	for name, value := range map[string]string{
		"DATABASE_URL":   c.DatabaseURL,
		"JWT_SECRET_KEY": c.JWTSecretKey,
		"CRON_SECRET":    c.CronSecret,
	} {
		if value == "" {
			return fmt.Errorf("%s environment variable is not set", name)
		}
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort)
	}

	u, err := url.Parse(c.RedisURL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	if u.Scheme != "redis" && u.Scheme != "rediss" {
		return fmt.Errorf("REDIS_URL must use redis:// or rediss://, got %q", u.Scheme)
	}

	if c.SyncSchedule == "" {
		return errors.New("SYNC_SCHEDULE must not be empty")
	}
	if c.SyncWindow <= 0 {
		return fmt.Errorf("SYNC_WINDOW must be positive, got %s", c.SyncWindow)
	}
	if c.SyncConcurrency < 1 {
		return fmt.Errorf("SYNC_CONCURRENCY must be at least 1, got %d", c.SyncConcurrency)
	}
	return nil
}
