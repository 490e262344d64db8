package config

import (
	"os"

	"taskboard/internal/logger"

	"github.com/joho/godotenv"
)

// fallbackSecret keeps local development working without a .env file. It is
// insecure and logged loudly; production deployments must set JWT_SECRET.
const fallbackSecret = "insecure-dev-secret-do-not-deploy"

type Config struct {
	AppPort     string
	AppEnv      string
	DatabaseURL string
	JWTSecret   string
}

func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = fallbackSecret
		logger.Warn("JWT_SECRET is not set, using insecure development fallback")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	return &Config{
		AppPort:     port,
		AppEnv:      env,
		DatabaseURL: dbURL,
		JWTSecret:   secret,
	}
}

func (c *Config) Production() bool {
	return c.AppEnv == "production"
}
