package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	config "github.com/deepak4044/service_marketplace/configs"
	"github.com/deepak4044/service_marketplace/models"
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
		&models.Worker{},
		&models.SubCategoryService{},
		&models.UserLocation{},
		&models.Wallet{},
		&models.WalletTransaction{},
		&models.PromoOffer{},
		&models.PromoRedemption{},
		&models.Booking{},
		&models.BookingWorker{},
		&models.UserNotification{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// SeedAdmin creates the platform account and its wallet. Commission credits
// from both payment paths land in this wallet.
func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var admin models.User
	err := DB.Where("role = ?", models.RoleAdmin).First(&admin).Error
	if err == nil {
		ensureWallet(admin.ID)
		log.Println("Admin user already exists.")
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	admin = models.User{
		Name:     config.Config("ADMIN_NAME"),
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	ensureWallet(admin.ID)
	log.Println("✅ Admin user seeded successfully")
}

func ensureWallet(userID uuid.UUID) {
	var count int64
	if err := DB.Model(&models.Wallet{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		log.Printf("🔥 Failed to check admin wallet: %v", err)
		return
	}
	if count > 0 {
		return
	}
	wallet := models.Wallet{UserID: userID, Balance: decimal.Zero}
	if err := DB.Create(&wallet).Error; err != nil {
		log.Printf("🔥 Failed to seed admin wallet: %v", err)
	}
}
