package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"detailops-be/internal/entity"
	"detailops-be/internal/repository/implementation"
	"detailops-be/pkg/database"
)

// Seeds a fresh database with an admin account and a starter service
// catalog. Safe to re-run: existing records are left alone.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	store := implementation.NewDatastore(db)
	ctx := context.Background()

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "changeme123"
	}

	existing, err := store.Users().FindByUsername(ctx, "admin")
	if err != nil {
		log.Fatalf("Error: seed lookup failed: %v", err)
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Error: password hash failed: %v", err)
		}
		hashStr := string(hash)
		admin := &entity.User{
			Username:     "admin",
			PasswordHash: &hashStr,
			FullName:     "Shop Admin",
			Role:         entity.UserRoleAdmin,
			IsActive:     true,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := store.Users().Create(ctx, admin); err != nil {
			log.Fatalf("Error: admin seed failed: %v", err)
		}
		log.Println("Created admin user (username: admin)")
	} else {
		log.Println("Admin user already exists, skipping")
	}

	services, err := store.Catalog().FindAll(ctx, false)
	if err != nil {
		log.Fatalf("Error: catalog lookup failed: %v", err)
	}
	if len(services) == 0 {
		starter := []*entity.Service{
			{Name: "Exterior Wash", Description: "Hand wash, wheels and tire dressing", Price: 49, DurationMinutes: 45, Color: "#4A90D9", IsActive: true},
			{Name: "Interior Detail", Description: "Full vacuum, steam clean, leather conditioning", Price: 149, DurationMinutes: 120, Color: "#7B61FF", IsActive: true},
			{Name: "Full Detail", Description: "Exterior and interior combined", Price: 249, DurationMinutes: 210, Color: "#2EAE60", IsActive: true},
			{Name: "Ceramic Coating", Description: "Single-layer ceramic with prep polish", Price: 699, DurationMinutes: 420, Color: "#E8833A", IsActive: true},
		}
		for _, svc := range starter {
			svc.CreatedAt = time.Now()
			if err := store.Catalog().Create(ctx, svc); err != nil {
				log.Fatalf("Error: catalog seed failed: %v", err)
			}
		}
		log.Printf("Seeded %d catalog services", len(starter))
	} else {
		log.Println("Catalog already populated, skipping")
	}

	log.Println("Seed complete.")
}
