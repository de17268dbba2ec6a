package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/app/repositories"
	"github.com/chitralaya/chitralaya/app/services/apperr"
)

func TestDashboardAggregates(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(
		repositories.NewUserRepository(db),
		repositories.NewProductRepository(db),
		repositories.NewOrderRepository(db),
	)

	user := seedUser(t, db, "asha@example.com")
	seedProduct(t, db, "Active", 1000, true)
	seedProduct(t, db, "Retired", 1000, false)

	for i, paid := range []bool{true, true, false} {
		status := models.PaymentPending
		if paid {
			status = models.PaymentCompleted
		}
		order := &models.Order{
			UserID:        user.ID,
			TotalAmount:   float64(1000 * (i + 1)),
			PaymentStatus: status,
			OrderStatus:   models.OrderPending,
		}
		require.NoError(t, db.Create(order).Error)
	}

	stats, err := svc.RefreshDashboard(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 1, stats.TotalProducts, "inactive products are not counted")
	assert.EqualValues(t, 3, stats.TotalOrders)
	assert.EqualValues(t, 1, stats.TotalUsers)
	assert.Equal(t, float64(3000), stats.TotalRevenue, "revenue counts completed payments only")
	assert.Len(t, stats.RecentOrders, 3)
}

func TestUpdateUserNeverTouchesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(
		repositories.NewUserRepository(db),
		repositories.NewProductRepository(db),
		repositories.NewOrderRepository(db),
	)
	user := seedUser(t, db, "asha@example.com")

	inactive := false
	updated, err := svc.UpdateUser(user.ID, AdminUserUpdateInput{
		Role:     models.RoleAdmin,
		IsActive: &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.False(t, updated.IsActive)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, user.Password, reloaded.Password)
}

func TestDeleteUserRemovesAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(
		repositories.NewUserRepository(db),
		repositories.NewProductRepository(db),
		repositories.NewOrderRepository(db),
	)
	user := seedUser(t, db, "asha@example.com")

	require.NoError(t, svc.DeleteUser(user.ID))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	err := svc.DeleteUser(user.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
