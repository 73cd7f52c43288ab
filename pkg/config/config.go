package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	Debug bool

	LogLevel  string
	LogFormat string

	// LLMProvider selects the chat model backend: "gemini" or "openrouter".
	LLMProvider string

	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string

	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string

	RapidAPIKey   string
	JSearchBase   string
	JSearchHost   string
	SearchTimeout time.Duration
	// SearchRatePerSecond paces calls to the job-search provider; 0 disables pacing.
	SearchRatePerSecond int

	RedisURL string
	CacheTTL time.Duration

	ScoringRatePerMinute int
	ScoringMode          string
	ResumePromptFormat   string
}

// Load reads environment variables, optionally from the given .env files.
// With no files it tries ./.env and ignores a missing file.
func Load(envFiles ...string) Config {
	_ = godotenv.Load(envFiles...)

	cfg := Config{
		Port:  getEnv("PORT", "8080"),
		Debug: getEnvBool("APP_DEBUG", false),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		LLMProvider: strings.ToLower(getEnv("LLM_PROVIDER", "gemini")),

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-pro"),

		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterModel:    getEnv("OPENROUTER_MODEL", "qwen/qwen2.5-32b-instruct"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "find-job-with-ai"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),

		RapidAPIKey:   os.Getenv("RAPIDAPI_KEY"),
		JSearchBase:   getEnv("JSEARCH_BASE_URL", "https://jsearch.p.rapidapi.com"),
		JSearchHost:   getEnv("JSEARCH_HOST", "jsearch.p.rapidapi.com"),
		SearchTimeout: getEnvDuration("JSEARCH_TIMEOUT", 30*time.Second),

		SearchRatePerSecond: getEnvInt("JSEARCH_RATE_PER_SECOND", 5),

		RedisURL: os.Getenv("REDIS_URL"),
		CacheTTL: getEnvDuration("CACHE_TTL", time.Hour),

		ScoringRatePerMinute: getEnvInt("SCORING_RATE_PER_MINUTE", 120),
		ScoringMode:          strings.ToLower(getEnv("SCORING_MODE", "batch")),
		ResumePromptFormat:   strings.ToLower(getEnv("RESUME_PROMPT_FORMAT", "lines")),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// getEnvDuration accepts Go durations ("90s") or a bare number of seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}
