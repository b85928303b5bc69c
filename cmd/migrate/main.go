package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"detailops-be/internal/model"
	"detailops-be/pkg/database"
)

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

	log.Println("Running GORM migration...")

	models := []interface{}{
		&model.User{},
		&model.Customer{},
		&model.Vehicle{},
		&model.Service{},
		&model.Job{},
		&model.JobService{},
		&model.Invoice{},
		&model.Payment{},
		&model.InventoryItem{},
		&model.InventoryTransaction{},
		&model.MembershipPlan{},
		&model.CustomerSubscription{},
		&model.Review{},
		&model.Activity{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Success: database migration completed.")
}
