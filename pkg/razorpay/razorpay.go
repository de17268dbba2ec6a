// Package razorpay is the payment gateway adapter: it creates provider
// orders for checkout and verifies the signature the provider returns
// after the shopper pays.
package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/chitralaya/chitralaya/config"
	"github.com/chitralaya/chitralaya/pkg/http"
)

const gatewayTimeout = 10 * time.Second

// Order is the provider-side payment intent.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type Gateway struct {
	client    *http.Client
	baseURL   string
	keySecret string
}

func New() *Gateway {
	return &Gateway{
		client: http.New().
			WithTimeout(gatewayTimeout).
			WithRetries(2).
			WithBasicAuth(config.RazorpayKeyID(), config.RazorpayKeySecret()),
		baseURL:   strings.TrimRight(config.RazorpayBaseURL(), "/"),
		keySecret: config.RazorpayKeySecret(),
	}
}

// NewWithCredentials builds a gateway with explicit settings, used by
// tests pointed at a stub server.
func NewWithCredentials(baseURL, keyID, keySecret string) *Gateway {
	return &Gateway{
		client:    http.New().WithTimeout(gatewayTimeout).WithRetries(0).WithBasicAuth(keyID, keySecret),
		baseURL:   strings.TrimRight(baseURL, "/"),
		keySecret: keySecret,
	}
}

// CreateOrder registers a payment intent with the provider. amount is
// in the currency's smallest unit (paise), receipt ties the intent
// back to the store order.
func (g *Gateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*Order, error) {
	payload := map[string]any{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	resp, err := g.client.PostJSON(ctx, g.baseURL+"/orders", payload)
	if err != nil {
		return nil, fmt.Errorf("razorpay: create order: %w", err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("razorpay: create order returned %d", resp.StatusCode)
	}

	var order Order
	if err := resp.JSON(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// VerifySignature checks the HMAC-SHA256 the provider computes over
// "{providerOrderID}|{paymentID}" with the key secret. The comparison
// is constant-time.
func (g *Gateway) VerifySignature(providerOrderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(providerOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
