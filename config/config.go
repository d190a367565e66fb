package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	AppEnv         string   `env:"APP_ENV" envDefault:"development"`
	GinMode        string   `env:"GIN_MODE"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"debug"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"https://agroflow.pt,https://www.agroflow.pt"`
	// SMTP Configuration. Values stay raw strings so that a missing key can be
	// reported per request instead of failing startup.
	SMTP SMTPConfig
	// Redis Configuration (optional)
	RedisURL      string `env:"REDIS_URL"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	// Rate Limiting Configuration
	ContactRateLimit       int `env:"CONTACT_RATE_LIMIT" envDefault:"5"`
	RateLimitWindowSeconds int `env:"RATE_LIMIT_WINDOW_SECONDS" envDefault:"60"`
	// Media endpoints
	YouTubeAPIKey        string `env:"YOUTUBE_API_KEY"`
	VideoCacheTTLSeconds int    `env:"VIDEO_CACHE_TTL_SECONDS" envDefault:"3600"`
}

// SMTPConfig mirrors the mail environment variables one to one.
type SMTPConfig struct {
	Host           string `env:"SMTP_HOST"`
	Port           string `env:"SMTP_PORT"`
	User           string `env:"SMTP_USER"`
	Pass           string `env:"SMTP_PASS"`
	From           string `env:"EMAIL_FROM"`
	To             string `env:"EMAIL_TO"`
	TimeoutSeconds int    `env:"SMTP_TIMEOUT_SECONDS" envDefault:"10"`
}

// Recipient returns EMAIL_TO, or EMAIL_FROM when EMAIL_TO is unset.
func (c SMTPConfig) Recipient() string {
	if strings.TrimSpace(c.To) != "" {
		return c.To
	}
	return c.From
}

// Timeout is the dial and per-command timeout for SMTP operations.
func (c SMTPConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally; ignored when the file is absent)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.SMTP.Host == "" {
		log.Println("WARNING: SMTP_HOST is missing. Contact form submissions will fail until it is set.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether diagnostic detail must be hidden from clients.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production") || c.GinMode == "release"
}

// RateLimitWindow returns the rate limiting window as a duration.
func (c *Config) RateLimitWindow() time.Duration {
	if c.RateLimitWindowSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

// VideoCacheTTL returns how long YouTube search results are cached.
func (c *Config) VideoCacheTTL() time.Duration {
	if c.VideoCacheTTLSeconds <= 0 {
		return time.Hour
	}
	return time.Duration(c.VideoCacheTTLSeconds) * time.Second
}
