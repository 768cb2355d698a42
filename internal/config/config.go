package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSessionTTL is two weeks.
const DefaultSessionTTL = 14 * 24 * time.Hour

type Config struct {
	AppEnv   string
	LogLevel string

	DatabaseURL string
	SessionTTL  time.Duration
}

// Load reads the given env files, or .env when none are given, and then
// the process environment. Missing files are skipped. Variables already
// set in the environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("godotenv.Load[%s]: %w", file, err)
		}
	}

	return Config{
		AppEnv:      getEnv("APP_ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		SessionTTL:  getEnvDuration("SESSION_TTL", DefaultSessionTTL),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}

	return d
}
