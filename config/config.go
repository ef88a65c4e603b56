package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	Environment  string
	DatabaseURL  string
	DB           DBConfig
	JWTSecret    string
	JWTExpiry    time.Duration
	FrontendURL  string
	LogLevel     string
	RedisAddr    string
	OTLPEndpoint string
	R2           *R2Config
	Google       GoogleCredentials
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
}

type GoogleCredentials struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Load reads .env when present and fills the config from the environment.
func Load() *Config {
	// Missing .env is fine in production.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "alerta_golpe"),
			Port:     getEnv("DB_PORT", "5432"),
		},
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTExpiry:    time.Duration(getEnvInt("JWT_EXPIRE_HOURS", 24*7)) * time.Hour,
		FrontendURL:  getEnv("FRONTEND_URL", "http://localhost:3000"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		R2:           GetR2Config(),
		Google: GoogleCredentials{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// DSN prefers DATABASE_URL and otherwise builds one from the DB_* variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
