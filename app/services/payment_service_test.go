package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/app/repositories"
	"github.com/chitralaya/chitralaya/app/services/apperr"
	"github.com/chitralaya/chitralaya/pkg/razorpay"
	"gorm.io/gorm"
)

const testKeySecret = "test_secret"

func signPayment(providerOrderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testKeySecret))
	mac.Write([]byte(providerOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func seedPendingOrder(t *testing.T, db *gorm.DB, userID uint, providerOrderID string) *models.Order {
	t.Helper()

	order := &models.Order{
		UserID:          userID,
		TotalAmount:     2500,
		PaymentStatus:   models.PaymentPending,
		OrderStatus:     models.OrderPending,
		ProviderOrderID: providerOrderID,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestVerifyMarksOrderPaid(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "asha@example.com")
	order := seedPendingOrder(t, db, user.ID, "order_rzp_1")

	gateway := razorpay.NewWithCredentials("http://unused", "key", testKeySecret)
	svc := NewPaymentService(repositories.NewOrderRepository(db), gateway)

	updated, err := svc.Verify(VerifyInput{
		ProviderOrderID: "order_rzp_1",
		PaymentID:       "pay_123",
		Signature:       signPayment("order_rzp_1", "pay_123"),
	})
	require.NoError(t, err)

	assert.Equal(t, order.ID, updated.ID)
	assert.Equal(t, models.PaymentCompleted, updated.PaymentStatus)
	assert.Equal(t, models.OrderConfirmed, updated.OrderStatus)
	assert.Equal(t, models.MethodUPI, updated.PaymentMethod)
	assert.Equal(t, "pay_123", updated.PaymentID)
}

func TestVerifyForgedSignatureLeavesOrderUntouched(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "asha@example.com")
	order := seedPendingOrder(t, db, user.ID, "order_rzp_1")

	gateway := razorpay.NewWithCredentials("http://unused", "key", testKeySecret)
	svc := NewPaymentService(repositories.NewOrderRepository(db), gateway)

	_, err := svc.Verify(VerifyInput{
		ProviderOrderID: "order_rzp_1",
		PaymentID:       "pay_123",
		Signature:       "deadbeef",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindSignature))

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.PaymentPending, reloaded.PaymentStatus)
	assert.Equal(t, models.OrderPending, reloaded.OrderStatus)
	assert.Empty(t, reloaded.PaymentID)
}

func TestVerifyUnknownProviderOrder(t *testing.T) {
	db := newTestDB(t)

	gateway := razorpay.NewWithCredentials("http://unused", "key", testKeySecret)
	svc := NewPaymentService(repositories.NewOrderRepository(db), gateway)

	_, err := svc.Verify(VerifyInput{
		ProviderOrderID: "order_ghost",
		PaymentID:       "pay_1",
		Signature:       signPayment("order_ghost", "pay_1"),
	})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCreateIntentChargesPersistedTotal(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "asha@example.com")
	order := seedPendingOrder(t, db, user.ID, "")

	var gotAmount float64
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotAmount = body["amount"].(float64)

		json.NewEncoder(w).Encode(razorpay.Order{ID: "order_rzp_9", Status: "created"})
	}))
	defer stub.Close()

	gateway := razorpay.NewWithCredentials(stub.URL, "key", testKeySecret)
	svc := NewPaymentService(repositories.NewOrderRepository(db), gateway)

	intent, err := svc.CreateIntent(context.Background(), user.ID, CreateIntentInput{OrderID: order.ID})
	require.NoError(t, err)

	assert.Equal(t, "order_rzp_9", intent.ID)
	assert.Equal(t, float64(250000), gotAmount, "amount is the persisted total in paise")

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, "order_rzp_9", reloaded.ProviderOrderID)
}

func TestCreateIntentRejectsPaidOrder(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "asha@example.com")
	order := seedPendingOrder(t, db, user.ID, "")
	require.NoError(t, db.Model(order).Update("payment_status", models.PaymentCompleted).Error)

	gateway := razorpay.NewWithCredentials("http://unused", "key", testKeySecret)
	svc := NewPaymentService(repositories.NewOrderRepository(db), gateway)

	_, err := svc.CreateIntent(context.Background(), user.ID, CreateIntentInput{OrderID: order.ID})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestCreateIntentGatewayDown(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "asha@example.com")
	order := seedPendingOrder(t, db, user.ID, "")

	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer stub.Close()

	gateway := razorpay.NewWithCredentials(stub.URL, "key", testKeySecret)
	svc := NewPaymentService(repositories.NewOrderRepository(db), gateway)

	_, err := svc.CreateIntent(context.Background(), user.ID, CreateIntentInput{OrderID: order.ID})
	assert.True(t, apperr.IsKind(err, apperr.KindGateway))
}
