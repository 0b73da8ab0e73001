package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	SMTP_HOST string
	SMTP_PORT string
	SMTP_FROM string
	SMTP_PASS string

	GOOGLE_CLIENT_ID string

	YOUTUBE_API_KEY    string
	YOUTUBE_CHANNEL_ID string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	SMTP_HOST = getEnv("SMTP_HOST", "smtp.gmail.com")
	SMTP_PORT = getEnv("SMTP_PORT", "587")
	SMTP_FROM = getEnv("SMTP_FROM", "")
	SMTP_PASS = getEnv("SMTP_PASSWORD", "")

	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")

	YOUTUBE_API_KEY = getEnv("YOUTUBE_API_KEY", "")
	YOUTUBE_CHANNEL_ID = getEnv("YOUTUBE_CHANNEL_ID", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
