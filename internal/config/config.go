package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// The guided tour promises "10% OFF until January 20th"; the window end
// below matches that copy and can be moved via DISCOUNT_END.
const defaultDiscountEnd = "2026-01-20T23:59:59Z"

type Config struct {
	ServerPort int

	WebhookURL  string
	CatalogPath string

	DiscountRate float64
	DiscountEnd  time.Time

	TourStore     string // "redis" or "memory"
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: Could not load .env file")
	}

	config := &Config{}

	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.ServerPort = p
		}
	}
	if config.ServerPort == 0 {
		config.ServerPort = 8040
	}

	config.WebhookURL = os.Getenv("WEBHOOK_URL")
	if config.WebhookURL == "" {
		return nil, fmt.Errorf("WEBHOOK_URL must be set")
	}

	config.CatalogPath = os.Getenv("CATALOG_PATH")

	config.DiscountRate = 0.10
	if rate := os.Getenv("DISCOUNT_RATE"); rate != "" {
		r, err := strconv.ParseFloat(rate, 64)
		if err != nil || r < 0 || r >= 1 {
			return nil, fmt.Errorf("DISCOUNT_RATE must be a fraction in [0,1): %q", rate)
		}
		config.DiscountRate = r
	}

	end, err := time.Parse(time.RFC3339, getEnvOrDefault("DISCOUNT_END", defaultDiscountEnd))
	if err != nil {
		return nil, fmt.Errorf("DISCOUNT_END must be RFC3339: %w", err)
	}
	config.DiscountEnd = end

	config.TourStore = getEnvOrDefault("TOUR_STORE", "redis")

	redisHost := getEnvOrDefault("STORE_REDIS_HOST", "localhost")
	redisPort := getEnvOrDefault("STORE_REDIS_PORT", "6379")
	config.RedisAddr = fmt.Sprintf("%s:%s", redisHost, redisPort)
	config.RedisPassword = os.Getenv("STORE_REDIS_PASSWORD")

	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
