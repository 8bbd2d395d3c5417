package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/templetrust/sevaledger/models"
)

var DB *gorm.DB

// InitDB connects to Postgres and migrates the ledger schema. An error
// here is not fatal to the process: main degrades to the local fallback
// store and the server keeps answering in read-only payment mode.
func InitDB(config *Config) error {
	if !config.DatabaseConfigured() {
		return fmt.Errorf("database not configured")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Donation{},
		&models.Expense{},
		&models.Notification{},
		&models.Admin{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	DB = db
	return nil
}
