package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// MaxPageSize is the largest maxResults the commentThreads endpoint accepts.
const MaxPageSize = 100

var ErrMissingAPIKey = errors.New("YOUTUBE_API_KEY not set")

type Config struct {
	YouTubeAPIKey   string
	YouTubeEndpoint string
	Port            string
	PageSize        int64
	PageRate        float64
	HTTPTimeout     time.Duration
	// SessionStore is memory, mongo or redis. With mongo each session is one
	// document and must stay under MongoDB's 16 MB limit.
	SessionStore    string
	SessionTTL      time.Duration
	MongoURI        string
	MongoDB         string
	RedisURL        string
	NATSUrl         string
	ServiceName     string
	Environment     string
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[WARN] Failed to read .env file: %v", err)
	}

	cfg := &Config{
		YouTubeAPIKey:   getEnv("YOUTUBE_API_KEY", os.Getenv("API_KEY")),
		YouTubeEndpoint: getEnv("YOUTUBE_API_ENDPOINT", ""),
		Port:            getEnv("PORT", "8080"),
		PageSize:        int64(getIntEnv("PAGE_SIZE", MaxPageSize)),
		PageRate:        getFloatEnv("PAGE_RATE", 0),
		HTTPTimeout:     getDurationEnv("HTTP_TIMEOUT", "30s"),
		SessionStore:    getEnv("SESSION_STORE", "memory"),
		SessionTTL:      getDurationEnv("SESSION_TTL", "1h"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "commentsdb"),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379/0"),
		NATSUrl:         getEnv("NATS_URL", ""),
		ServiceName:     getEnv("SERVICE_NAME", "comment-service"),
		Environment:     getEnv("ENVIRONMENT", "development"),
	}

	if cfg.PageSize <= 0 || cfg.PageSize > MaxPageSize {
		cfg.PageSize = MaxPageSize
	}

	if cfg.YouTubeAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	log.Printf("Config loaded - PageSize: %d, SessionStore: %s, SessionTTL: %v, NATS: %t",
		cfg.PageSize, cfg.SessionStore, cfg.SessionTTL, cfg.NATSUrl != "")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
