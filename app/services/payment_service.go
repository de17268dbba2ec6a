package services

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/app/repositories"
	"github.com/chitralaya/chitralaya/app/services/apperr"
	"github.com/chitralaya/chitralaya/config"
	"github.com/chitralaya/chitralaya/pkg/metrics"
	"github.com/chitralaya/chitralaya/pkg/razorpay"
)

type PaymentService struct {
	orders  *repositories.OrderRepository
	gateway *razorpay.Gateway
}

func NewPaymentService(orders *repositories.OrderRepository, gateway *razorpay.Gateway) *PaymentService {
	return &PaymentService{orders: orders, gateway: gateway}
}

type CreateIntentInput struct {
	OrderID uint `json:"orderId" validate:"required"`
}

type VerifyInput struct {
	ProviderOrderID string `json:"razorpayOrderId" validate:"required"`
	PaymentID       string `json:"razorpayPaymentId" validate:"required"`
	Signature       string `json:"razorpaySignature" validate:"required"`
}

// CreateIntent registers the order with the payment provider. The
// charged amount is the persisted order total, converted to paise.
func (s *PaymentService) CreateIntent(ctx context.Context, userID uint, input CreateIntentInput) (*razorpay.Order, error) {
	order, err := s.orders.FindForUser(input.OrderID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("Order not found")
		}
		return nil, apperr.Server("Failed to load order", err)
	}

	if order.PaymentStatus != models.PaymentPending {
		return nil, apperr.Conflict("Order is already paid")
	}

	amountPaise := int64(math.Round(order.TotalAmount * 100))

	intent, err := s.gateway.CreateOrder(ctx, amountPaise, "INR", strconv.FormatUint(uint64(order.ID), 10))
	if err != nil {
		return nil, apperr.Gateway("Payment provider unavailable", err)
	}

	order.ProviderOrderID = intent.ID
	if err := s.orders.Save(order); err != nil {
		return nil, apperr.Server("Failed to attach payment intent", err)
	}

	return intent, nil
}

// Verify recomputes the provider signature and, on a match, marks the
// order paid and confirmed. A bad signature changes nothing.
func (s *PaymentService) Verify(input VerifyInput) (*models.Order, error) {
	if !s.gateway.VerifySignature(input.ProviderOrderID, input.PaymentID, input.Signature) {
		metrics.PaymentVerification("rejected")
		return nil, apperr.Signature("Payment signature verification failed")
	}

	order, err := s.orders.FindByProviderOrderID(input.ProviderOrderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("Order not found")
		}
		return nil, apperr.Server("Failed to load order", err)
	}

	order.PaymentStatus = models.PaymentCompleted
	order.OrderStatus = models.OrderConfirmed
	order.PaymentMethod = models.MethodUPI
	order.PaymentID = input.PaymentID

	if err := s.orders.Save(order); err != nil {
		return nil, apperr.Server("Failed to record payment", err)
	}

	metrics.PaymentVerification("verified")
	return order, nil
}

// KeyID exposes the public key for the checkout widget.
func (s *PaymentService) KeyID() string {
	return config.RazorpayKeyID()
}
