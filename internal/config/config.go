// README: Config loader with env defaults for HTTP, tariff, DB, Redis, AI, and Maps settings.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var defaultOrigins = []string{
	"http://localhost:8080",
	"http://localhost:5173",
	"http://localhost:3000",
	"http://127.0.0.1:8080",
	"http://127.0.0.1:5173",
}

type AIConfig struct {
	GeminiKey      string
	GeminiModel    string
	OpenAIKey      string
	OpenAIModel    string
	OpenAIEndpoint string
	Timeout        time.Duration
	ChatQuota      int
}

type Config struct {
	Env      string
	LogLevel string
	HTTP     struct {
		Addr           string
		CORSOrigins    []string
		TrustedProxies []string
	}
	Tariff struct {
		File       string
		FallbackKm int
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	AI   AIConfig
	Maps struct {
		APIKey string
	}
}

// Load reads .env when present, then the process environment. DB and Redis
// stay empty unless set; both are optional.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment variables")
	}

	var cfg Config
	cfg.Env = envOrDefault("CAMPUS_ENV", "development")
	cfg.LogLevel = envOrDefault("LOG_LEVEL", "info")
	cfg.HTTP.Addr = envOrDefault("CAMPUS_HTTP_ADDR", ":8000")
	cfg.HTTP.CORSOrigins = envOrDefaultSlice("CORS_ALLOWED_ORIGINS", defaultOrigins)
	cfg.HTTP.TrustedProxies = envOrDefaultSlice("CAMPUS_TRUSTED_PROXIES", nil)
	cfg.Tariff.File = os.Getenv("CAMPUS_TARIFF_FILE")
	cfg.Tariff.FallbackKm = envOrDefaultInt("CAMPUS_FALLBACK_KM", 300)
	cfg.DB.DSN = os.Getenv("CAMPUS_DB_DSN")
	cfg.Redis.Addr = os.Getenv("CAMPUS_REDIS_ADDR")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.GeminiModel = os.Getenv("GEMINI_MODEL")
	cfg.AI.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.AI.OpenAIModel = os.Getenv("OPENAI_MODEL")
	cfg.AI.OpenAIEndpoint = os.Getenv("OPENAI_ENDPOINT")
	cfg.AI.Timeout = envOrDefaultDuration("CAMPUS_AI_TIMEOUT", 10*time.Second)
	cfg.AI.ChatQuota = envOrDefaultInt("CAMPUS_CHAT_QUOTA", 100)
	cfg.Maps.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Tariff.FallbackKm <= 0 {
		return fmt.Errorf("CAMPUS_FALLBACK_KM must be positive, got %d", c.Tariff.FallbackKm)
	}
	if c.AI.Timeout <= 0 {
		return fmt.Errorf("CAMPUS_AI_TIMEOUT must be positive, got %s", c.AI.Timeout)
	}
	if c.AI.ChatQuota < 0 {
		return fmt.Errorf("CAMPUS_CHAT_QUOTA must not be negative, got %d", c.AI.ChatQuota)
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		logrus.Warnf("invalid integer for %s, using default %d", key, def)
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		logrus.Warnf("invalid duration for %s, using default %s", key, def)
	}
	return def
}

func envOrDefaultSlice(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
