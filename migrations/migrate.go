package main

import (
	"log"
	"os"

	"investing/src/config"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Applies the goose migrations in this directory. Pass "down" as the
// first argument to roll back one migration instead.
func main() {
	cfg, err := config.LoadConfig("./settings", os.Getenv("ENV"))
	if err != nil {
		log.Fatalf("Error loading config for environment: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.Databases.SQL.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB from GORM DB: %v", err)
	}

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	switch direction {
	case "up":
		err = goose.Up(sqlDB, "./migrations")
	case "down":
		err = goose.Down(sqlDB, "./migrations")
	default:
		log.Fatalf("Unknown migration direction %q", direction)
	}
	if err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Printf("Database migration (%s) completed successfully", direction)
}
