package main

import (
	"log"
	"os"
	"time"

	"taskhive/internal/database"
	"taskhive/internal/domain"

	"github.com/joho/godotenv"
)

// Retention cleanup for token records. Revocation on the hot path is
// a flag, never a delete; this binary is the one place rows actually
// go away: anything expired, or revoked long enough ago that reuse
// detection no longer needs it.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	now := time.Now().UTC()
	cutoff := now.Add(-30 * 24 * time.Hour)

	res := db.Where("expires_at < ?", now).
		Or("revoked = ? AND created_at < ?", true, cutoff).
		Delete(&domain.TokenRecord{})
	if res.Error != nil {
		log.Fatalf("cleanup token_records failed: %v", res.Error)
	}

	log.Printf("token cleanup completed: deleted=%d", res.RowsAffected)
}
