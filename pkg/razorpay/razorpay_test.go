package razorpay

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
)

func sign(secret, providerOrderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(providerOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	g := NewWithCredentials("http://unused", "key", "secret")

	valid := sign("secret", "order_123", "pay_456")
	assert.True(t, g.VerifySignature("order_123", "pay_456", valid))
}

func TestVerifySignatureRejectsForged(t *testing.T) {
	g := NewWithCredentials("http://unused", "key", "secret")

	forged := sign("wrong-secret", "order_123", "pay_456")
	assert.False(t, g.VerifySignature("order_123", "pay_456", forged))

	// signature over a different order must not transfer
	valid := sign("secret", "order_123", "pay_456")
	assert.False(t, g.VerifySignature("order_999", "pay_456", valid))

	assert.False(t, g.VerifySignature("order_123", "pay_456", ""))
}

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key_test", user)
		assert.Equal(t, "secret_test", pass)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(250000), body["amount"])
		assert.Equal(t, "INR", body["currency"])
		assert.Equal(t, "order-42", body["receipt"])

		json.NewEncoder(w).Encode(Order{
			ID:       "order_rzp_1",
			Amount:   250000,
			Currency: "INR",
			Receipt:  "order-42",
			Status:   "created",
		})
	}))
	defer srv.Close()

	g := NewWithCredentials(srv.URL, "key_test", "secret_test")

	order, err := g.CreateOrder(context.Background(), 250000, "INR", "order-42")
	require.NoError(t, err)
	assert.Equal(t, "order_rzp_1", order.ID)
	assert.Equal(t, "created", order.Status)
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := NewWithCredentials(srv.URL, "key", "secret")

	_, err := g.CreateOrder(context.Background(), 100, "INR", "r1")
	assert.Error(t, err)
}
