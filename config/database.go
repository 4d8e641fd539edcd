package config

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/civicwatch/api-go/logger"
	"github.com/civicwatch/api-go/models"
)

// CheckEnv fails fast on configuration the server cannot run without.
// Signing tokens with an empty HMAC key would otherwise go unnoticed until
// every issued token verified against every other deployment.
func CheckEnv() error {
	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("JWT_SECRET is not set")
	}
	return nil
}

// InitDB connects to PostgreSQL, runs migrations, and seeds the bootstrap
// administrator. Connection parameters come from the environment.
func InitDB() *gorm.DB {
	dbHost := os.Getenv("DB_HOST")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbPort := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPassword, dbName, dbPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := db.AutoMigrate(&models.User{}, &models.Report{}, &models.NewsArticle{}, &models.AdminLog{}); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if err := EnsureAdminUser(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to seed admin user")
	}

	return db
}

// EnsureAdminUser creates the administrator account from ADMIN_EMAIL,
// ADMIN_USERNAME and ADMIN_PASSWORD when configured and not already present.
// Registration only ever creates standard users, so this seed is the only way
// to obtain the first administrator.
func EnsureAdminUser(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		IsAdmin:  true,
	}
	return db.Create(&admin).Error
}
