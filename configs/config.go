package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	RedisAddr       string
	ServerPort      string
	JWTSecret       string
	LeetCodeURL     string
	UpstreamTimeout time.Duration
	CacheTTL        time.Duration
}

func LoadConfig() *Config {
	err := godotenv.Load()

	if err != nil {
		log.Println("No .env file found, relying on environment")
	}

	return &Config{
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "3306"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          getEnv("DB_NAME", "leetcode_tracker"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		LeetCodeURL:     getEnv("LEETCODE_URL", "https://leetcode.com/graphql"),
		UpstreamTimeout: getDurationSeconds("UPSTREAM_TIMEOUT_SECONDS", 10),
		CacheTTL:        getDurationSeconds("CACHE_TTL_SECONDS", 300),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationSeconds(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(fallback) * time.Second
}
