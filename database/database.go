package database

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	config "github.com/nurbekov/paylinks/configs"
	"github.com/nurbekov/paylinks/models"
)

var DB *gorm.DB

func ConnectDB(cfg config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	fmt.Println("Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.Admin{},
		&models.PaymentMethod{},
		&models.BankPaymentMethod{},
		&models.Platform{},
		&models.Tutorial{},
		&models.PaymentLink{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	fmt.Println("Database migration successful")
}

// SeedAdmin creates the initial admin account from the environment when no
// admin with the configured username exists yet.
func SeedAdmin(cfg config.Config) {
	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var count int64
	err := DB.Model(&models.Admin{}).Where("username = ?", cfg.AdminUsername).Count(&count).Error
	if err != nil {
		log.Fatalf("Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.Admin{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashedPassword),
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
		return
	}

	log.Println("Admin user seeded successfully")
}
