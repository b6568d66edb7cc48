// Package config loads process configuration from the environment.
// A .env file in the working directory is read first when present.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordscramble/internal/words"
)

// Config holds every tunable of the server and the terminal game.
type Config struct {
	Port     string `env:"PORT"      envDefault:"5175"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"` // play mode only; logs are discarded when empty

	StartWordsFile string `env:"WORDS_START_FILE"`
	DictionaryFile string `env:"WORDS_DICTIONARY_FILE"`
	Language       string `env:"WORDS_LANGUAGE" envDefault:"ru"`

	StoreDSN      string        `env:"STORE_DSN"` // empty: in-memory sessions
	SessionSecret string        `env:"SESSION_SECRET" envDefault:"dev_secret_change_me"`
	SessionTTL    time.Duration `env:"SESSION_TTL"    envDefault:"24h"`
	DailySalt     string        `env:"DAILY_SALT"     envDefault:"local_dev_salt"`
	ClientOrigin  string        `env:"CLIENT_ORIGIN"  envDefault:"http://localhost:5173"`
}

// Load reads .env (if any) and parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse parses the current environment into a Config.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	return &cfg, nil
}

// WordOptions returns the word-list options.
func (c *Config) WordOptions() words.Options {
	return words.Options{
		StartFile:      c.StartWordsFile,
		DictionaryFile: c.DictionaryFile,
		Language:       c.Language,
	}
}

// Level returns the configured zerolog level, falling back to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
