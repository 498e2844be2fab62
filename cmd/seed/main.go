package main

import (
	"log"
	"os"

	"taskhive/internal/database"
	"taskhive/internal/domain"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the two well-known dev accounts. Safe to re-run: existing
// users are left alone.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "taskhive.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Project{},
		&domain.Task{},
		&domain.TokenRecord{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	seedUser(db, "Test User One", "test1@email.com", "testuserone")
	seedUser(db, "Test User Two", "test2@email.com", "testusertwo")
}

func seedUser(db *gorm.DB, name, email, password string) {
	var existing domain.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("user %s already present", email)
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	u := domain.User{
		UID:          uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.Create(&u).Error; err != nil {
		log.Fatal(err)
	}
	log.Printf("added missing test user %s", email)
}
