package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
	ElevenLabsAPIKey string `env:"ELEVENLABS_API_KEY"`
	AuthTokenSecret  string `env:"AUTH_TOKEN_SECRET" envDefault:"dev-secret-change-me"`
	StorageBackend   string `env:"STORAGE_BACKEND" envDefault:"file"`
	StateDir         string `env:"STATE_DIR"`
	RedisURL         string `env:"REDIS_URL"`
	DatabaseURL      string `env:"DATABASE_URL"`
	AIModel          string `env:"AI_MODEL" envDefault:"gpt-3.5-turbo"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
}

// StateDirOrDefault resolves the directory for file-backed storage,
// defaulting to ~/.mindsync.
func (c *Config) StateDirOrDefault() string {
	if c.StateDir != "" {
		return c.StateDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mindsync"
	}
	return filepath.Join(home, ".mindsync")
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory, BackendFile:
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when STORAGE_BACKEND=redis")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORAGE_BACKEND=postgres")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
