package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	SerpAPI  SerpAPI    `mapstructure:",squash"`
	Fallback Fallback   `mapstructure:",squash"`
	TextGen  TextGen    `mapstructure:",squash"`
	Airport  Airport    `mapstructure:",squash"`
}

type HTTP struct {
	Port           int           `mapstructure:"HTTP_PORT"`
	Timeout        time.Duration `mapstructure:"HTTP_TIMEOUT"`
	AllowedOrigins []string      `mapstructure:"HTTP_ALLOWED_ORIGINS"`
}

// Redis backs the provider rate limiter. An empty address disables it.
type Redis struct {
	Addr     string `mapstructure:"REDIS_ADDR"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type SerpAPI struct {
	SearchAPIURL string        `mapstructure:"SERPAPI_SEARCH_API_URL"`
	APIKey       string        `mapstructure:"SERPAPI_API_KEY"`
	Timeout      time.Duration `mapstructure:"SERPAPI_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"SERPAPI_RATE_LIMIT"`
}

type Fallback struct {
	DatasetPath string `mapstructure:"FALLBACK_DATASET_PATH"`
}

type TextGen struct {
	APIURL  string        `mapstructure:"GEMINI_API_URL"`
	APIKey  string        `mapstructure:"GOOGLE_API_KEY"`
	Model   string        `mapstructure:"GEMINI_MODEL"`
	Timeout time.Duration `mapstructure:"GEMINI_TIMEOUT"`
}

// Airport points at a city code CSV. Empty uses the embedded table.
type Airport struct {
	CityCodeTablePath string `mapstructure:"CITY_CODE_TABLE_PATH"`
}
