package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath     string
	OutputPath string

	MatchThreshold      float64
	MatchScorer         string
	MatchMaxConcurrency int

	OpenAIAPIKey       string
	OpenAIModel        string
	OpenAITimeoutMs    int
	OracleRateLimitRPS int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:     getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),
		OutputPath: getEnv("OUTPUT_PATH", filepath.Join(cwd, "out", "combined.xlsx")),

		MatchThreshold:      clampThreshold(getEnvFloat("MATCH_THRESHOLD", 80)),
		MatchScorer:         getEnv("MATCH_SCORER", "partial"),
		MatchMaxConcurrency: getEnvInt("MATCH_MAX_CONCURRENCY", 4),

		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAITimeoutMs:    getEnvInt("OPENAI_TIMEOUT_MS", 30000),
		OracleRateLimitRPS: getEnvInt("ORACLE_RATE_LIMIT_RPS", 2),
	}

	return cfg, nil
}

// OracleEnabled reports whether the fallback oracle may be constructed.
// Credential presence is the only switch.
func (c Config) OracleEnabled() bool {
	return strings.TrimSpace(c.OpenAIAPIKey) != ""
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func clampThreshold(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
