package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brainwise/posnext-api/internal/config"
	"github.com/brainwise/posnext-api/internal/domain/entity"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Master data
		&entity.User{},
		&entity.Company{},
		&entity.Customer{},
		&entity.Account{},
		&entity.ModeOfPayment{},

		// POS configuration
		&entity.POSProfile{},
		&entity.POSPaymentMethod{},
		&entity.POSSettings{},

		// Till sessions
		&entity.POSOpeningShift{},
		&entity.POSClosingShift{},

		// Vouchers and ledger
		&entity.SalesInvoice{},
		&entity.SalesInvoicePayment{},
		&entity.GLEntry{},

		// System
		&entity.AccountsSettings{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// SeedDefaultData creates the accounts settings singleton and an initial
// admin user when configured
func SeedDefaultData(db *gorm.DB) error {
	// Accounts settings is a single-row table the posting pipeline reads
	// on every submit.
	var settings entity.AccountsSettings
	if err := db.First(&settings).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check accounts settings: %w", err)
		}
		settings = entity.AccountsSettings{PostChangeGLEntries: false}
		if err := db.Create(&settings).Error; err != nil {
			return fmt.Errorf("failed to seed accounts settings: %w", err)
		}
		log.Println("Seeded default accounts settings")
	}

	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if count == 0 {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		admin := entity.User{
			FirstName: "System",
			LastName:  "Administrator",
			Email:     adminEmail,
			Password:  string(hashedPassword),
			Language:  "en",
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
		log.Printf("Seeded admin user %s", adminEmail)
	}

	return nil
}
