package main

import (
	"database/sql"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"smart-routing-service/internal/adapters/repositories"
	"smart-routing-service/internal/platform/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	if err := initAndSeed(pg); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(pg *sql.DB) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(pg); err != nil {
		return err
	}
	log.Println("Schema ready.")

	log.Println("Seeding wilaya reference table...")
	if err := repositories.SeedWilayas(pg); err != nil {
		return err
	}
	log.Println("Seeding complete.")

	return nil
}
