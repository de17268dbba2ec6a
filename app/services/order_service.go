package services

import (
	"context"
	"errors"

	"github.com/chitralaya/chitralaya/app/jobs"
	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/app/repositories"
	"github.com/chitralaya/chitralaya/app/services/apperr"
	"github.com/chitralaya/chitralaya/pkg/logger"
	"github.com/chitralaya/chitralaya/pkg/metrics"
	"github.com/chitralaya/chitralaya/pkg/orm"
	"github.com/chitralaya/chitralaya/pkg/queue"
)

type OrderService struct {
	orders        *repositories.OrderRepository
	products      *repositories.ProductRepository
	users         *repositories.UserRepository
	notifications *NotificationService
}

func NewOrderService(
	orders *repositories.OrderRepository,
	products *repositories.ProductRepository,
	users *repositories.UserRepository,
	notifications *NotificationService,
) *OrderService {
	return &OrderService{
		orders:        orders,
		products:      products,
		users:         users,
		notifications: notifications,
	}
}

type OrderItemInput struct {
	ProductID uint `json:"productId" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required|gte:1"`
}

type ShippingInput struct {
	FullName string `json:"fullName" validate:"required|max:200"`
	Email    string `json:"email" validate:"required|email"`
	Phone    string `json:"phone" validate:"required|digits:10"`
	Address  string `json:"address" validate:"required|max:500"`
	City     string `json:"city" validate:"required|max:100"`
	State    string `json:"state" validate:"required|max:100"`
	Pincode  string `json:"pincode" validate:"required|digits:6"`
}

type PlaceOrderInput struct {
	Items           []OrderItemInput `json:"items" validate:"required|min:1"`
	ShippingAddress ShippingInput    `json:"shippingAddress"`
	PaymentMethod   string           `json:"paymentMethod" validate:"nullable|in:upi,card,cod"`
	Notes           string           `json:"notes" validate:"nullable|max:1000"`
}

type RepaintInput struct {
	ProductID uint   `json:"productId" validate:"required"`
	Notes     string `json:"notes" validate:"nullable|max:1000"`
}

type OrderUpdateInput struct {
	OrderStatus   string `json:"orderStatus" validate:"nullable|in:pending,confirmed,shipped,delivered,cancelled"`
	PaymentStatus string `json:"paymentStatus" validate:"nullable|in:pending,completed,failed,refunded"`
	Notes         string `json:"notes" validate:"nullable|max:1000"`
}

// Place creates an order. Unit prices and the total come from the
// catalog; whatever prices the client sent are ignored. A repeated
// Idempotency-Key returns the order created the first time.
func (s *OrderService) Place(ctx context.Context, userID uint, input PlaceOrderInput, idempotencyKey string) (*models.Order, error) {
	if idempotencyKey != "" {
		existing, err := s.orders.FindByIdempotencyKey(idempotencyKey)
		switch {
		case err == nil && existing.UserID == userID:
			return existing, nil
		case err == nil:
			// the key belongs to another user's order; never hand
			// that order out
			return nil, apperr.Conflict("Idempotency key is already in use")
		case !errors.Is(err, repositories.ErrNotFound):
			return nil, apperr.Server("Failed to check idempotency key", err)
		}
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	var total float64

	for _, line := range input.Items {
		product, err := s.products.FindByID(line.ProductID, true)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperr.NotFound("Product not found")
			}
			return nil, apperr.Server("Failed to load product", err)
		}

		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}

		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  line.Quantity,
			Price:     product.Price,
			Image:     image,
		})
		total += product.Price * float64(line.Quantity)
	}

	order := &models.Order{
		UserID:      userID,
		Items:       items,
		TotalAmount: total,
		ShippingAddress: models.ShippingAddress{
			FullName: input.ShippingAddress.FullName,
			Email:    input.ShippingAddress.Email,
			Phone:    input.ShippingAddress.Phone,
			Address:  input.ShippingAddress.Address,
			City:     input.ShippingAddress.City,
			State:    input.ShippingAddress.State,
			Pincode:  input.ShippingAddress.Pincode,
		},
		PaymentStatus: models.PaymentPending,
		OrderStatus:   models.OrderPending,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	}
	if idempotencyKey != "" {
		order.IdempotencyKey = &idempotencyKey
	}

	if err := s.orders.Create(order); err != nil {
		return nil, apperr.Server("Failed to create order", err)
	}

	metrics.OrderCreated("purchase")
	s.dispatchMail(ctx, jobs.OrderConfirmationJob, order.ID)

	return order, nil
}

// PlaceRepaint creates a single-item qty-1 order for the product at
// catalog price. Shipping identity comes from the user's profile; the
// address fields stay "To be provided" until the gallery follows up.
// A notification is created for the back office as part of the flow.
func (s *OrderService) PlaceRepaint(ctx context.Context, userID uint, input RepaintInput) (*models.Order, error) {
	product, err := s.products.FindByID(input.ProductID, true)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, apperr.Server("Failed to load product", err)
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, apperr.Server("Failed to load account", err)
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}

	order := &models.Order{
		UserID: userID,
		Items: []models.OrderItem{{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  1,
			Price:     product.Price,
			Image:     image,
		}},
		TotalAmount: product.Price,
		ShippingAddress: models.ShippingAddress{
			FullName: user.FullName(),
			Email:    user.Email,
			Phone:    user.Phone,
			Address:  "To be provided",
			City:     "To be provided",
			State:    "To be provided",
			Pincode:  "000000",
		},
		PaymentStatus:    models.PaymentPending,
		OrderStatus:      models.OrderPending,
		Notes:            input.Notes,
		IsRepaintRequest: true,
	}

	if err := s.orders.Create(order); err != nil {
		return nil, apperr.Server("Failed to create repaint request", err)
	}

	if _, err := s.notifications.CreateRepaint(userID, product.ID); err != nil {
		// checkout already succeeded; surface the miss in logs only
		logger.Error("repaint notification failed", "order_id", order.ID, "error", err)
	}

	metrics.OrderCreated("repaint")
	s.dispatchMail(ctx, jobs.RepaintAlertJob, order.ID)

	return order, nil
}

// ListMine returns the caller's orders, newest first.
func (s *OrderService) ListMine(userID uint) ([]models.Order, error) {
	orders, err := s.orders.ListForUser(userID)
	if err != nil {
		return nil, apperr.Server("Failed to load orders", err)
	}
	return orders, nil
}

// GetMine returns the order only to its owner; anyone else sees 404.
func (s *OrderService) GetMine(id, userID uint) (*models.Order, error) {
	order, err := s.orders.FindForUser(id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("Order not found")
		}
		return nil, apperr.Server("Failed to load order", err)
	}
	return order, nil
}

// DeleteMine removes the order while payment is still pending. Once
// money has moved the delete conflicts and nothing changes.
func (s *OrderService) DeleteMine(id, userID uint) error {
	deleted, err := s.orders.DeleteIfPending(id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperr.NotFound("Order not found")
		}
		return apperr.Server("Failed to delete order", err)
	}
	if !deleted {
		return apperr.Conflict("Only orders with pending payment can be deleted")
	}
	return nil
}

// AdminGet returns any order regardless of owner.
func (s *OrderService) AdminGet(id uint) (*models.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("Order not found")
		}
		return nil, apperr.Server("Failed to load order", err)
	}
	return order, nil
}

// AdminUpdate applies a partial status update; absent fields keep
// their values.
func (s *OrderService) AdminUpdate(id uint, input OrderUpdateInput) (*models.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("Order not found")
		}
		return nil, apperr.Server("Failed to load order", err)
	}

	if input.OrderStatus != "" {
		order.OrderStatus = input.OrderStatus
	}
	if input.PaymentStatus != "" {
		order.PaymentStatus = input.PaymentStatus
	}
	if input.Notes != "" {
		order.Notes = input.Notes
	}

	if err := s.orders.Save(order); err != nil {
		return nil, apperr.Server("Failed to update order", err)
	}
	return order, nil
}

// AdminList filters come from query parameters, so they are checked
// here rather than by binding tags.
func (s *OrderService) AdminList(orderStatus, paymentStatus string, page, limit int) ([]models.Order, orm.Pagination, error) {
	if orderStatus != "" && !models.ValidOrderStatus(orderStatus) {
		return nil, orm.Pagination{}, apperr.Validation("Invalid order status filter", nil)
	}
	if paymentStatus != "" && !models.ValidPaymentStatus(paymentStatus) {
		return nil, orm.Pagination{}, apperr.Validation("Invalid payment status filter", nil)
	}

	orders, p, err := s.orders.ListAll(repositories.OrderFilter{
		OrderStatus:   orderStatus,
		PaymentStatus: paymentStatus,
		Page:          page,
		Limit:         limit,
	})
	if err != nil {
		return nil, p, apperr.Server("Failed to load orders", err)
	}
	return orders, p, nil
}

func (s *OrderService) dispatchMail(ctx context.Context, job string, orderID uint) {
	if err := queue.Dispatch(ctx, job, jobs.OrderPayload{OrderID: orderID}); err != nil {
		logger.Warn("mail job dispatch failed", "job", job, "order_id", orderID, "error", err)
	}
}
