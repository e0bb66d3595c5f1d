package db

import (
	"portfolio_backend/internal/config" // Application configuration
	"portfolio_backend/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing

	"gorm.io/driver/postgres" // PostgreSQL driver for GORM
	"gorm.io/gorm"            // GORM ORM library
)

// Open connects to the database or exits
func Open(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	return db
}

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err := db.AutoMigrate(&domain.User{}, &domain.Category{}, &domain.Image{})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}

// seedCategories is the static reference data for the portfolio sections
var seedCategories = []domain.Category{
	{NameCS: "Svatební líčení", Slug: "svatebni-liceni", DisplayOrder: 1, ParentSection: "liceni"},
	{NameCS: "Líčení na plesy a večírky", Slug: "liceni-na-plesy-a-vecirky", DisplayOrder: 2, ParentSection: "liceni"},
	{NameCS: "Slavnostní líčení", Slug: "slavnostni-liceni", DisplayOrder: 3, ParentSection: "liceni"},
	{NameCS: "Líčení pro focení", Slug: "liceni-pro-foceni", DisplayOrder: 4, ParentSection: "liceni"},
	{NameCS: "Svatební účesy", Slug: "svatebni-ucesy", DisplayOrder: 5, ParentSection: "ucesy"},
	{NameCS: "Společenské účesy", Slug: "spolecenske-ucesy", DisplayOrder: 6, ParentSection: "ucesy"},
}

// Seed inserts the static categories and the admin user, skipping rows that
// already exist so it can run repeatedly
func Seed(db *gorm.DB, cfg *config.Config) {
	// Seed categories keyed by slug
	for _, category := range seedCategories {
		var existing domain.Category
		if err := db.Where("slug = ?", category.Slug).First(&existing).Error; err == nil {
			logrus.Infof("Category already exists: %s", category.NameCS)
			continue
		}
		if err := db.Create(&category).Error; err != nil {
			logrus.Fatalf("failed to create category %s: %v", category.NameCS, err)
		}
		logrus.Infof("Created category: %s", category.NameCS)
	}

	// Seed the admin user
	var existing domain.User
	if err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error; err == nil {
		logrus.Infof("Admin user already exists: %s", cfg.AdminUsername)
		return
	}
	// Hash the admin password with bcrypt cost 10
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("failed to hash admin password: %v", err)
	}
	admin := domain.User{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hash),
		Email:        cfg.AdminEmail,
	}
	if err := db.Create(&admin).Error; err != nil {
		logrus.Fatalf("failed to create admin user: %v", err)
	}
	logrus.Infof("Created admin user: %s", cfg.AdminUsername)
}
