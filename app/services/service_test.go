package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/app/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Address{},
		&models.Notification{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		FirstName: "Asha",
		LastName:  "Verma",
		Email:     email,
		Phone:     "9876543210",
		Password:  "not-a-real-hash",
		Role:      models.RoleUser,
		IsActive:  true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, active bool) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:        name,
		Description: "test artwork",
		Price:       price,
		Category:    models.CategoryCanvas,
		Images:      models.StringList{"assets/canvas/test.jpeg"},
		IsActive:    active,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func newOrderService(db *gorm.DB) *OrderService {
	products := repositories.NewProductRepository(db)
	orders := repositories.NewOrderRepository(db)
	users := repositories.NewUserRepository(db)
	notifications := NewNotificationService(repositories.NewNotificationRepository(db), products)

	return NewOrderService(orders, products, users, notifications)
}
