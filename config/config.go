package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDB       string
	AdminKey      string
	ClientOrigin  string
	RedisAddr     string
	RedisPassword string
	// Rate limiter window applied to all /api traffic
	RateLimitMax    int
	RateLimitWindow int
	// TTL (seconds) for cached public blog reads
	CacheTTL int
	AppEnv   string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		Port:            getenvOrDefault("PORT", "8080"),
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDB:         getenvOrDefault("MONGO_DB", "landingpage"),
		AdminKey:        os.Getenv("ADMIN_KEY"),
		ClientOrigin:    getenvOrDefault("CLIENT_ORIGIN", "http://localhost:5173"),
		RedisAddr:       getenvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RateLimitMax:    getenvIntOrDefault("RATE_LIMIT_MAX", 60),
		RateLimitWindow: getenvIntOrDefault("RATE_LIMIT_WINDOW_SECONDS", 60),
		CacheTTL:        getenvIntOrDefault("CACHE_TTL_SECONDS", 300),
		AppEnv:          getenvOrDefault("APP_ENV", "development"),
	}
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvIntOrDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
