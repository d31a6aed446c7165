package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                string
	Port               string
	DBURL              string
	JWTSecret          string
	TokenExpirySeconds int
	// LoginUpdateDelay throttles the login update before it is persisted.
	// Off by default.
	LoginUpdateDelay time.Duration
}

func Load() *Config {
	// Optional .env file for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	return &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		DBURL:              mustGetEnv("DB_URL"),
		JWTSecret:          mustGetEnv("JWT_SECRET"),
		TokenExpirySeconds: getEnvAsInt("TOKEN_EXPIRY_SECONDS", 3600),
		LoginUpdateDelay:   time.Duration(getEnvAsInt("LOGIN_UPDATE_DELAY_MS", 0)) * time.Millisecond,
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
