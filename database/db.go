package database

import (
	"fmt"
	"os"

	"billease-backend/models"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found, relying on process environment")
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "db"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=5432 sslmode=disable TimeZone=Asia/Kolkata",
		host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to database")
	}
}

// AutoMigrate migrates the public (cross-tenant) tables. Tenant tables are
// migrated per schema in MigrateTenantSchema.
func AutoMigrate() {
	if err := DB.AutoMigrate(&models.User{}, &models.Company{}, &models.LicenseKey{}); err != nil {
		log.Fatal().Err(err).Msg("public schema migration failed")
	}
}
