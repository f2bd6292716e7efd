package database

import (
	"fmt"
	"log"

	config "github.com/synthosphere/academy_backend/configs"
	"github.com/synthosphere/academy_backend/models"
	"github.com/synthosphere/academy_backend/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Payout{},
		&models.PayoutEntry{},
		&models.CourseDetails{},
		&models.Purchase{},
		&models.Checkout{},
		&models.BankDetails{},
		&models.Rank{},
		&models.RankReward{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	userID, err := utils.GenerateUniqueUserID(DB)
	if err != nil {
		log.Fatalf("🔥 Failed to generate admin user ID: %v", err)
		return
	}

	adminUser := models.User{
		UserID:       userID,
		Name:         config.Config("ADMIN_FULL_NAME"),
		Phone:        config.Config("ADMIN_PHONE"),
		Email:        adminEmail,
		Address:      "head office",
		AadharNo:     "admin",
		PanNo:        "admin",
		Password:     string(hashedPassword),
		ReferralLink: utils.ReferralLinkFor(userID),
		Status:       "active",
		Role:         "admin",
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}
