package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AppEnv        string
	MongoURI      string
	MongoDB       string
	JWTSecret     string
	JWTExpireDays int
	BcryptCost    int
	FrontendURL   string
}

// Load reads configuration from the environment (and .env if present).
// The result is constructed once in main and passed down explicitly.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		AppEnv:        getEnv("APP_ENV", "development"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "gotasks"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		JWTExpireDays: getEnvInt("JWT_EXPIRE_DAYS", 30),
		BcryptCost:    getEnvInt("BCRYPT_COST", 10),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:3000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
