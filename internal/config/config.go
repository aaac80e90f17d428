package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	apperrors "github.com/vladimiradmaev/akashic-rays/internal/errors"
	"github.com/vladimiradmaev/akashic-rays/internal/logger"
)

const (
	StateBackendMemory = "memory"
	StateBackendRedis  = "redis"
)

type Config struct {
	TelegramToken   string        `env:"TELEGRAM_BOT_TOKEN,required,notEmpty"`
	GeminiAPIKey    string        `env:"GEMINI_API_KEY"`
	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`
	NarratorTimeout time.Duration `env:"NARRATOR_TIMEOUT" envDefault:"15s"`
	State           StateConfig
	Logger          LoggerConfig
}

type StateConfig struct {
	Backend       string        `env:"STATE_BACKEND" envDefault:"memory"`
	RedisHost     string        `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort     string        `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL           time.Duration `env:"STATE_TTL" envDefault:"30m"`
}

// RedisAddr returns host:port for the redis client
func (s StateConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%s", s.RedisHost, s.RedisPort)
}

type LoggerConfig struct {
	Level      logger.LogLevel `env:"LOG_LEVEL" envDefault:"info"`
	OutputPath string          `env:"LOG_OUTPUT" envDefault:"stdout"`
	Format     string          `env:"LOG_FORMAT" envDefault:"json"`
}

// ToLogger converts the section into logger options
func (l LoggerConfig) ToLogger() logger.Config {
	return logger.Config{
		Level:      l.Level,
		OutputPath: l.OutputPath,
		Format:     l.Format,
	}
}

// Load reads the configuration from the environment. Call godotenv first
// if a .env file should be honoured.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrorTypeValidation, "INVALID_CONFIG", "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values env tags cannot express
func (c *Config) Validate() error {
	switch c.State.Backend {
	case StateBackendMemory, StateBackendRedis:
	default:
		return apperrors.NewValidationError(fmt.Sprintf("unknown state backend %q", c.State.Backend)).
			WithContext("allowed", []string{StateBackendMemory, StateBackendRedis})
	}
	if c.State.TTL <= 0 {
		return apperrors.NewValidationError("STATE_TTL must be positive")
	}
	if c.NarratorTimeout <= 0 {
		return apperrors.NewValidationError("NARRATOR_TIMEOUT must be positive")
	}
	switch c.Logger.Format {
	case "json", "text":
	default:
		return apperrors.NewValidationError(fmt.Sprintf("unknown log format %q", c.Logger.Format))
	}
	return nil
}
