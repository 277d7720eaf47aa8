package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// LLM provider
	LLMProvider  string
	LLMModel     string
	GeminiAPIKey string
	OpenAIAPIKey string

	// Storage (both optional; the service degrades to in-memory tiers)
	DatabaseURL string
	RedisURL    string

	// Application
	AppID           string
	FrontendURL     string
	Participants    []string
	QuizTopics      []string
	BannedWords     []string
	QuizTimezone    *time.Location
	RateLimitPerMin int
}

var defaultParticipants = []string{
	"Mina", "Jun", "Sky", "Harper", "Leo",
	"Zoe", "Mateo", "Ivy", "Noah", "Aria",
	"Kai", "Ruby", "Eli", "Sana", "Theo",
}

var defaultTopics = []string{
	"school life", "memes", "humor", "crushes", "compliments",
	"social media", "idols", "tv shows", "gaming", "the future",
}

var defaultBannedWords = []string{
	"violence", "drugs", "alcohol", "gambling",
}

// Load builds the configuration once at process start. A missing credential
// for the selected provider is an error here, not a deferred nil check.
func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		Env:             getEnvOrDefault("ENV", "development"),
		LLMProvider:     getEnvOrDefault("LLM_PROVIDER", "gemini"),
		LLMModel:        getEnvOrDefault("LLM_MODEL", ""),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		AppID:           getEnvOrDefault("APP_ID", "default-quiz-app"),
		FrontendURL:     getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
		Participants:    getEnvAsListOrDefault("PARTICIPANT_POOL", defaultParticipants),
		QuizTopics:      getEnvAsListOrDefault("QUIZ_TOPICS", defaultTopics),
		BannedWords:     getEnvAsListOrDefault("BANNED_WORDS", defaultBannedWords),
		RateLimitPerMin: getEnvAsIntOrDefault("RATE_LIMIT_PER_MINUTE", 10),
	}

	switch cfg.LLMProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER=gemini")
		}
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q (want gemini or openai)", cfg.LLMProvider)
	}

	tz := getEnvOrDefault("QUIZ_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid QUIZ_TIMEZONE %q: %w", tz, err)
	}
	cfg.QuizTimezone = loc

	return cfg, nil
}

// APIKey returns the credential for the configured provider.
func (c *Config) APIKey() string {
	if c.LLMProvider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsListOrDefault(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parts := strings.Split(val, ",")
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
