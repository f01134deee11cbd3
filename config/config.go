package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Gauravsingh640/Quickart/pkg/constant"
)

const (
	DefaultPort                  = "8080"
	DefaultDBName                = "Quickart"
	DefaultBaseURL               = "http://localhost:8080"
	DefaultSMTPPort              = 587
	DefaultVerificationExpiryMin = constant.DefaultVerificationExpiryMin
	DefaultAccessTokenExpiryMin  = constant.DefaultAccessTokenExpiryMin
	DefaultRefreshTokenExpiryMin = constant.DefaultRefreshTokenExpiryMin
)

type Config struct {
	Env     string
	Port    string
	BaseURL string

	MongoURI string
	DBName   string

	TokenSecret           string
	VerificationExpiryMin int
	AccessExpiryMin       int
	RefreshExpiryMin      int

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

// Load reads config/.env.dev or config/.env.prod (depending on ENV) if
// present, then resolves every key from the environment. Real environment
// variables take precedence over file values.
func Load() *Config {
	env := getEnv("ENV", "development")

	file := "config/.env.dev"
	if env == "production" {
		file = "config/.env.prod"
	}
	// Missing file is fine; env vars alone are a valid configuration.
	_ = godotenv.Load(file)

	return &Config{
		Env:                   env,
		Port:                  getEnv("PORT", DefaultPort),
		BaseURL:               getEnv("BASE_URL", DefaultBaseURL),
		MongoURI:              mustGetEnv("MONGO_URL"),
		DBName:                getEnv("DB_NAME", DefaultDBName),
		TokenSecret:           mustGetEnv("TOKEN_SECRET"),
		VerificationExpiryMin: getEnvAsInt("VERIFICATION_TOKEN_EXPIRY", DefaultVerificationExpiryMin),
		AccessExpiryMin:       getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		RefreshExpiryMin:      getEnvAsInt("REFRESH_TOKEN_EXPIRY", DefaultRefreshTokenExpiryMin),
		SMTPHost:              getEnv("SMTP_HOST", ""),
		SMTPPort:              getEnvAsInt("SMTP_PORT", DefaultSMTPPort),
		SMTPUsername:          getEnv("SMTP_USERNAME", ""),
		SMTPPassword:          getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:              getEnv("SMTP_FROM", "no-reply@quickart.local"),
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
	log.Fatalf("Missing required config: %s", key)
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
