package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	OpenAIAPIKey string
	OpenAIBase   string
	OpenAIModel  string

	CatalogPath   string
	ChecklistPath string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "ukstudy-backend"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 7*24*60),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIBase:   os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),

		CatalogPath:   getEnv("CATALOG_PATH", "university_data/converted_universities.json"),
		ChecklistPath: getEnv("CHECKLIST_PATH", "university_data/converted_checklist.json"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
