package main

import (
	"os"

	"taskboard/internal/db"
	"taskboard/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	logger.InitFromEnv()
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL not set")
	}

	if err := db.Migrate(dsn); err != nil {
		logger.Fatal("migration failed", "error", err)
	}
	logger.Info("migrations applied")
}
