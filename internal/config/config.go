package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server settings read from the environment
type Config struct {
	Port          string
	MongoURI      string
	MongoDB       string
	RedisAddr     string
	QuestionsPath string
	AdminUsername string
	AdminPassword string
	JWTSecret     string
	SessionTTL    time.Duration
	CORS          CORSConfig
}

// CORSConfig holds the CORS response header values
type CORSConfig struct {
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// Load reads an optional .env file and then the process environment
func Load(envFiles ...string) *Config {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load(envFiles...)

	return &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		MongoURI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnvOrDefault("MONGO_DB", "capsdiag"),
		RedisAddr:     redisAddr(getEnvOrDefault("REDIS_URI", "localhost:6379")),
		QuestionsPath: getEnvOrDefault("QUESTIONS_PATH", "data/questions.tsv"),
		AdminUsername: getEnvOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnvOrDefault("ADMIN_PASSWORD", "password123"),
		JWTSecret:     getEnvOrDefault("JWT_SECRET", "super-secret-key-change-in-production"),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		CORS: CORSConfig{
			AllowedOrigins: getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnvOrDefault("CORS_ALLOWED_METHODS", "GET, POST, PUT, DELETE, OPTIONS"),
			AllowedHeaders: getEnvOrDefault("CORS_ALLOWED_HEADERS", "Content-Type, Authorization"),
		},
	}
}

// redisAddr strips a redis:// scheme so the value can be used as an address
func redisAddr(uri string) string {
	return strings.TrimPrefix(uri, "redis://")
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
