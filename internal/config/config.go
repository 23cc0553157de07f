package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Dias221467/waseela/pkg/logger"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	LogLevel       string
	AllowedOrigins []string

	// Goal-suggestion assistant; disabled when OpenAIAPIKey is empty.
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	ActivityLimit   int
	DueSoonWindow   time.Duration
	DueSoonSchedule string
	CleanupSchedule string
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Log.Info("No .env file found, using environment variables")
	}

	return &Config{
		Port:           envString("PORT", "8080"),
		LogLevel:       envString("LOG_LEVEL", "info"),
		AllowedOrigins: envList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),

		OpenAIAPIKey:  envString("OPENAI_API_KEY", ""),
		OpenAIModel:   envString("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: envString("OPENAI_BASE_URL", ""),

		ActivityLimit:   envInt("ACTIVITY_LIMIT", 200),
		DueSoonWindow:   envDuration("DUE_SOON_WINDOW", 24*time.Hour),
		DueSoonSchedule: envString("DUE_SOON_SCHEDULE", "@hourly"),
		CleanupSchedule: envString("CLEANUP_SCHEDULE", "0 0 * * *"),
	}
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logger.Log.WithField("key", key).Warn("Invalid integer in environment, using default")
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logger.Log.WithField("key", key).Warn("Invalid duration in environment, using default")
		return fallback
	}
	return d
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
