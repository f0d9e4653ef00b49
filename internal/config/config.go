package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBUrl         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CORSOrigin    string
	SessionSecret string
	SessionCookie string
	AdminUsername string
	AdminPassword string
	SeedDemoData  bool
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found, using environment defaults")
	}

	return Config{
		Port:          getEnv("PORT", "8000"),
		DBUrl:         os.Getenv("DB_URL"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		CORSOrigin:    getEnv("CORS_ORIGIN", "http://localhost:8080"),
		SessionSecret: getEnv("SESSION_SECRET", "session_cookie_secret"),
		SessionCookie: getEnv("SESSION_COOKIE", "session_id"),
		AdminUsername: getEnv("ADMIN_USERNAME", "sklad"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "123qwe"),
		SeedDemoData:  getEnvBool("SEED_DEMO_DATA", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
