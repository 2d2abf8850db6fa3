package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	AccessTokenMinutes int
	RefreshTokenDays   int

	FootballApiURL string
	FootballApiKey string

	ValkeyAddr     string
	ValkeyPassword string
	ValkeyDB       int

	SyncHour     int    // local hour after which the daily feed sync may run
	SyncTimezone string // IANA zone name for the sync gate

	EmailSender string
	Password    string // SMTP Password
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		AccessTokenMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		RefreshTokenDays:   getEnvInt("REFRESH_TOKEN_EXPIRE_DAYS", 7),

		FootballApiURL: getEnv("API_ENDPOINT", "https://api-football-v1.p.rapidapi.com/v3"),
		FootballApiKey: getEnv("FOOTBALL_API_KEY", ""),

		ValkeyAddr:     getEnv("VALKEY_ADDR", "localhost:6379"),
		ValkeyPassword: getEnv("VALKEY_PASSWORD", ""),
		ValkeyDB:       getEnvInt("VALKEY_DB", 0),

		SyncHour:     getEnvInt("SYNC_HOUR", 14),
		SyncTimezone: getEnv("SYNC_TIMEZONE", "America/Argentina/Buenos_Aires"),

		EmailSender: getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:    getEnv("PASSWORD", "defaultSecret"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.FootballApiKey == "" {
		log.Println("Warning: FOOTBALL_API_KEY not set. Feed sync will fail until it is configured.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
