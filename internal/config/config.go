package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Gemini Config
	GeminiAPIKey    string        `env:"GEMINI_API_KEY"`
	GeminiModel     string        `env:"GEMINI_MODEL" envDefault:"gemini-3-flash-preview"`
	GeminiMapsModel string        `env:"GEMINI_MAPS_MODEL" envDefault:"gemini-2.5-flash"`
	GeminiTimeout   time.Duration `env:"GEMINI_TIMEOUT" envDefault:"30s"`

	// Static data (пустой путь - встроенный справочник)
	StaticDataPath string `env:"STATIC_DATA_PATH"`

	// News feed
	NewsLocation     string        `env:"NEWS_LOCATION"`
	NewsPollInterval time.Duration `env:"NEWS_POLL_INTERVAL" envDefault:"5m"`

	// Sessions
	SessionTTL           time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`

	// Rate limit для эндпоинтов, которые ходят в модель
	AIRateLimit float64 `env:"AI_RATE_LIMIT" envDefault:"1"`
	AIRateBurst int     `env:"AI_RATE_BURST" envDefault:"5"`

	// Redis Config (пустой адрес отключает рассылки)
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Broadcast webhook Config
	BroadcastWebhookURL     string        `env:"BROADCAST_WEBHOOK_URL"`
	BroadcastWebhookSecret  string        `env:"BROADCAST_WEBHOOK_SECRET"`
	BroadcastWebhookTimeout time.Duration `env:"BROADCAST_WEBHOOK_TIMEOUT" envDefault:"5s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:                getEnv("HTTP_PORT", "8080"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		LogFormat:               getEnv("LOG_FORMAT", "json"),
		GeminiAPIKey:            getEnv("GEMINI_API_KEY", os.Getenv("API_KEY")),
		GeminiModel:             getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
		GeminiMapsModel:         getEnv("GEMINI_MAPS_MODEL", "gemini-2.5-flash"),
		GeminiTimeout:           getEnvAsDuration("GEMINI_TIMEOUT", 30*time.Second),
		StaticDataPath:          os.Getenv("STATIC_DATA_PATH"),
		NewsLocation:            os.Getenv("NEWS_LOCATION"),
		NewsPollInterval:        getEnvAsDuration("NEWS_POLL_INTERVAL", 5*time.Minute),
		SessionTTL:              getEnvAsDuration("SESSION_TTL", 30*time.Minute),
		SessionSweepInterval:    getEnvAsDuration("SESSION_SWEEP_INTERVAL", time.Minute),
		AIRateLimit:             getEnvAsFloat("AI_RATE_LIMIT", 1),
		AIRateBurst:             getEnvAsInt("AI_RATE_BURST", 5),
		RedisAddr:               os.Getenv("REDIS_ADDR"),
		RedisPass:               os.Getenv("REDIS_PASSWORD"),
		RedisDB:                 getEnvAsInt("REDIS_DB", 0),
		BroadcastWebhookURL:     os.Getenv("BROADCAST_WEBHOOK_URL"),
		BroadcastWebhookSecret:  os.Getenv("BROADCAST_WEBHOOK_SECRET"),
		BroadcastWebhookTimeout: getEnvAsDuration("BROADCAST_WEBHOOK_TIMEOUT", 5*time.Second),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if cfg.NewsPollInterval <= 0 {
		return nil, fmt.Errorf("NEWS_POLL_INTERVAL must be positive, got %s", cfg.NewsPollInterval)
	}
	if cfg.AIRateLimit <= 0 {
		return nil, fmt.Errorf("AI_RATE_LIMIT must be positive, got %v", cfg.AIRateLimit)
	}
	if cfg.AIRateBurst <= 0 {
		return nil, fmt.Errorf("AI_RATE_BURST must be positive, got %d", cfg.AIRateBurst)
	}

	return cfg, nil
}

// BroadcastEnabled сообщает, настроена ли очередь рассылок
func (c *Config) BroadcastEnabled() bool {
	return c.RedisAddr != ""
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
