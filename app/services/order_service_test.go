package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/app/services/apperr"
)

func placeInput(items ...OrderItemInput) PlaceOrderInput {
	return PlaceOrderInput{
		Items: items,
		ShippingAddress: ShippingInput{
			FullName: "Asha Verma",
			Email:    "asha@example.com",
			Phone:    "9876543210",
			Address:  "12 Gallery Lane",
			City:     "Pune",
			State:    "Maharashtra",
			Pincode:  "411001",
		},
	}
}

func TestPlaceRecomputesTotalFromCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "asha@example.com")
	p1 := seedProduct(t, db, "Radha Krishna", 100, true)

	order, err := svc.Place(context.Background(), user.ID, placeInput(
		OrderItemInput{ProductID: p1.ID, Quantity: 2},
	), "")
	require.NoError(t, err)

	assert.Equal(t, float64(200), order.TotalAmount)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
	assert.Equal(t, models.OrderPending, order.OrderStatus)
	require.Len(t, order.Items, 1)
	assert.Equal(t, float64(100), order.Items[0].Price, "unit price must come from the catalog")
}

func TestPlaceIgnoresInactiveProducts(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "asha@example.com")
	inactive := seedProduct(t, db, "Retired", 500, false)

	_, err := svc.Place(context.Background(), user.ID, placeInput(
		OrderItemInput{ProductID: inactive.ID, Quantity: 1},
	), "")

	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestPlaceIdempotencyKeyReturnsFirstOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "asha@example.com")
	p := seedProduct(t, db, "Majestic Peacock", 2799, true)

	first, err := svc.Place(context.Background(), user.ID, placeInput(
		OrderItemInput{ProductID: p.ID, Quantity: 1},
	), "retry-key-1")
	require.NoError(t, err)

	second, err := svc.Place(context.Background(), user.ID, placeInput(
		OrderItemInput{ProductID: p.ID, Quantity: 3},
	), "retry-key-1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPlaceIdempotencyKeyNeverCrossesUsers(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	asha := seedUser(t, db, "asha@example.com")
	ravi := seedUser(t, db, "ravi@example.com")
	p := seedProduct(t, db, "Majestic Peacock", 2799, true)

	ashasOrder, err := svc.Place(context.Background(), asha.ID, placeInput(
		OrderItemInput{ProductID: p.ID, Quantity: 1},
	), "shared-key")
	require.NoError(t, err)

	// Replaying another user's key must not hand their order out.
	_, err = svc.Place(context.Background(), ravi.ID, placeInput(
		OrderItemInput{ProductID: p.ID, Quantity: 1},
	), "shared-key")
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	raviOrders, err := svc.ListMine(ravi.ID)
	require.NoError(t, err)
	assert.Empty(t, raviOrders)

	// The owner's replay still returns the original order.
	replayed, err := svc.Place(context.Background(), asha.ID, placeInput(
		OrderItemInput{ProductID: p.ID, Quantity: 1},
	), "shared-key")
	require.NoError(t, err)
	assert.Equal(t, ashasOrder.ID, replayed.ID)
	assert.Equal(t, asha.ID, replayed.UserID)
}

func TestDeleteMineOnlyWhilePending(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "asha@example.com")
	p := seedProduct(t, db, "Graceful Bird", 2349, true)

	order, err := svc.Place(context.Background(), user.ID, placeInput(
		OrderItemInput{ProductID: p.ID, Quantity: 1},
	), "")
	require.NoError(t, err)

	// paid orders refuse deletion and stay untouched
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", order.ID).
		Update("payment_status", models.PaymentCompleted).Error)

	err = svc.DeleteMine(order.ID, user.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	var still models.Order
	require.NoError(t, db.First(&still, order.ID).Error)

	// back to pending, deletion goes through
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", order.ID).
		Update("payment_status", models.PaymentPending).Error)
	require.NoError(t, svc.DeleteMine(order.ID, user.ID))

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeleteMineForeignOrderReadsAsMissing(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	p := seedProduct(t, db, "Charming House", 2549, true)

	order, err := svc.Place(context.Background(), owner.ID, placeInput(
		OrderItemInput{ProductID: p.ID, Quantity: 1},
	), "")
	require.NoError(t, err)

	err = svc.DeleteMine(order.ID, other.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = svc.GetMine(order.ID, other.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestPlaceRepaint(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "asha@example.com")
	p := seedProduct(t, db, "Divine Krishna", 2199, true)

	order, err := svc.PlaceRepaint(context.Background(), user.ID, RepaintInput{ProductID: p.ID})
	require.NoError(t, err)

	assert.True(t, order.IsRepaintRequest)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, p.Price, order.Items[0].Price)
	assert.Equal(t, p.Price, order.TotalAmount)

	assert.Equal(t, "Asha Verma", order.ShippingAddress.FullName)
	assert.Equal(t, "To be provided", order.ShippingAddress.Address)
	assert.Equal(t, "To be provided", order.ShippingAddress.City)

	var n models.Notification
	require.NoError(t, db.First(&n).Error)
	assert.Equal(t, models.NotificationRepaint, n.Type)
	assert.Equal(t, "Repaint request for: Divine Krishna", n.Message)
	assert.Equal(t, user.ID, n.UserID)
}

func TestAdminUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "asha@example.com")
	p := seedProduct(t, db, "Beautiful Girl", 2999, true)

	order, err := svc.Place(context.Background(), user.ID, placeInput(
		OrderItemInput{ProductID: p.ID, Quantity: 1},
	), "")
	require.NoError(t, err)

	updated, err := svc.AdminUpdate(order.ID, OrderUpdateInput{OrderStatus: models.OrderShipped})
	require.NoError(t, err)

	assert.Equal(t, models.OrderShipped, updated.OrderStatus)
	assert.Equal(t, models.PaymentPending, updated.PaymentStatus, "absent fields stay unchanged")
}

func TestAdminListRejectsUnknownStatusFilters(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	_, _, err := svc.AdminList("teleported", "", 1, 20)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, _, err = svc.AdminList("", "gifted", 1, 20)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, _, err = svc.AdminList(models.OrderShipped, models.PaymentCompleted, 1, 20)
	assert.NoError(t, err)
}

func TestAdminGetCrossesOwners(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "asha@example.com")
	p1 := seedProduct(t, db, "Radha Krishna", 100, true)

	placed, err := svc.Place(context.Background(), user.ID, placeInput(
		OrderItemInput{ProductID: p1.ID, Quantity: 1},
	), "")
	require.NoError(t, err)

	order, err := svc.AdminGet(placed.ID)
	require.NoError(t, err)
	assert.Equal(t, placed.ID, order.ID)

	_, err = svc.AdminGet(placed.ID + 99)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestListMineNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "asha@example.com")
	p := seedProduct(t, db, "Tiger", 1799, true)

	for i := 0; i < 3; i++ {
		_, err := svc.Place(context.Background(), user.ID, placeInput(
			OrderItemInput{ProductID: p.ID, Quantity: 1},
		), "")
		require.NoError(t, err)
	}

	orders, err := svc.ListMine(user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i-1].CreatedAt.Before(orders[i].CreatedAt))
	}
}
