package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the server reads from the environment.
// godotenv loads .env in main before this runs.
type Config struct {
	Port string

	LLMProvider  string // "openai" (default) or "gemini"
	OpenAIAPIKey string
	GeminiAPIKey string
	GeminiModel  string

	NaverClientID     string
	NaverClientSecret string

	CORSAllowedOrigins []string

	// Ceiling for a single itinerary-generation call. On timeout the
	// handler returns the templated fallback instead of an error.
	GPTTimeout time.Duration
}

func Load() *Config {
	cfg := &Config{
		Port:              getEnv("PORT", "8000"),
		LLMProvider:       strings.ToLower(getEnv("LLM_PROVIDER", "openai")),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		NaverClientID:     os.Getenv("NAVER_CLIENT_ID"),
		NaverClientSecret: os.Getenv("NAVER_CLIENT_SECRET"),
		GPTTimeout:        time.Duration(getEnvInt("GPT_TIMEOUT_SEC", 20)) * time.Second,
	}

	origins := getEnv("CORS_ALLOWED_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
