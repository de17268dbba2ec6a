// Package seeders fills a fresh database with the gallery catalog and
// a bootstrap admin account.
package seeders

import (
	"os"

	"gorm.io/gorm"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/pkg/auth"
	"github.com/chitralaya/chitralaya/pkg/logger"
)

// Run replaces the catalog with the seed inventory and ensures the
// admin account exists.
func Run(db *gorm.DB) error {
	if err := seedProducts(db); err != nil {
		return err
	}
	return seedAdmin(db)
}

func seedProducts(db *gorm.DB) error {
	if err := db.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
		return err
	}

	for i := range catalog {
		catalog[i].IsActive = true
		catalog[i].Artist = "Chitralaya Artist"
	}

	if err := db.Create(&catalog).Error; err != nil {
		return err
	}

	logger.Info("seeded products", "count", len(catalog))
	return nil
}

// seedAdmin creates the back-office account when none exists. The
// password comes from ADMIN_PASSWORD; without it, no account is made.
func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		logger.Warn("ADMIN_PASSWORD not set, skipping admin account seed")
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		FirstName: "Gallery",
		LastName:  "Admin",
		Email:     "admin@chitralaya.art",
		Password:  hashed,
		Role:      models.RoleAdmin,
		IsActive:  true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("seeded admin account", "email", admin.Email)
	return nil
}
