package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	StorageBucket   string
	Environment     string

	// Timeout applied at the data-access boundary; expiry surfaces as a
	// transient, retryable failure.
	ReadTimeout time.Duration

	// When true, "active seller" additionally requires at least one listed
	// product on top of approval status.
	ActiveSellerRequiresListing bool
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:                  getEnv("SERVER_PORT", "8080"),
		FirebaseProject:             getEnv("FIREBASE_PROJECT_ID", ""),
		StorageBucket:               getEnv("STORAGE_BUCKET", ""),
		Environment:                 getEnv("ENVIRONMENT", "development"),
		ReadTimeout:                 getEnvAsDuration("READ_TIMEOUT", 10*time.Second),
		ActiveSellerRequiresListing: getEnvAsBool("STATS_ACTIVE_SELLER_REQUIRES_LISTING", false),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		duration, err := time.ParseDuration(value)
		if err == nil {
			return duration
		}
	}
	return defaultValue
}
