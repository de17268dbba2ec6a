// Package migrations registers the schema history. Importing the
// package (blank import from the CLI) is what registers the steps.
package migrations

import (
	"gorm.io/gorm"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/pkg/migration"
)

func init() {
	migration.Register(migration.Migration{
		Name: "0001_initial_schema",
		Up: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&models.User{},
				&models.Product{},
				&models.Order{},
				&models.OrderItem{},
				&models.Address{},
				&models.Notification{},
			)
		},
		Down: func(db *gorm.DB) error {
			return db.Migrator().DropTable(
				&models.Notification{},
				&models.Address{},
				&models.OrderItem{},
				&models.Order{},
				&models.Product{},
				&models.User{},
			)
		},
	})
}
