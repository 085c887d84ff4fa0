package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Redis (optional, shared rate-limiter storage across replicas)
	RedisURL string

	// Messenger platform
	MessengerVerifyToken string // Expected hub.verify_token on webhook verification
	MessengerAccessToken string // Page access token for the send API
	MessengerAppSecret   string // App secret for X-Hub-Signature-256 verification (optional)
	MessengerSendURL     string // Send API endpoint

	// NLU service
	NLUQueryURL    string // Query endpoint of the NLU service
	NLUClientToken string // Client access token
	NLULang        string // Query language, e.g. "en"
	FindToolAction string // Action name that triggers tool resolution

	// Ranking API
	RankingAPIURL   string // Base URL of the ranking API
	RankingAPIToken string // Access credential

	// Outbound call limits
	UpstreamTimeout  time.Duration // Per-call timeout for external HTTP calls
	RankingRateLimit int           // Ranking API requests per second
	RankingRateBurst int

	// Features
	SeedDevToolTypes bool // Seed a handful of tool-type mappings on startup
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":5000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:5000"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/stackbot?sslmode=disable"),
		RedisURL:    getEnv("REDIS_URL", ""),

		MessengerVerifyToken: getEnv("MESSENGER_VERIFY_TOKEN", ""),
		MessengerAccessToken: getEnv("MESSENGER_ACCESS_TOKEN", ""),
		MessengerAppSecret:   getEnv("MESSENGER_APP_SECRET", ""),
		MessengerSendURL:     getEnv("MESSENGER_SEND_URL", "https://graph.facebook.com/v2.6/me/messages"),

		NLUQueryURL:    getEnv("NLU_QUERY_URL", "https://api.api.ai/v1/query"),
		NLUClientToken: getEnv("NLU_CLIENT_TOKEN", ""),
		NLULang:        getEnv("NLU_LANG", "en"),
		FindToolAction: getEnv("FIND_TOOL_ACTION", "find-tool"),

		RankingAPIURL:   getEnv("RANKING_API_URL", "https://api.stackshare.io/v1"),
		RankingAPIToken: getEnv("RANKING_API_TOKEN", ""),

		UpstreamTimeout:  getDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		RankingRateLimit: getInt("RANKING_RATE_LIMIT", 10),
		RankingRateBurst: getInt("RANKING_RATE_BURST", 5),

		SeedDevToolTypes: getEnv("SEED_DEV_TOOL_TYPES", "") != "",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsSignatureCheckEnabled returns true if webhook payload signatures
// should be verified.
func (c *Config) IsSignatureCheckEnabled() bool {
	return c.MessengerAppSecret != ""
}
