// Package jobs defines the queued background work: transactional mail
// that must not block checkout.
package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/app/repositories"
	"github.com/chitralaya/chitralaya/config"
	"github.com/chitralaya/chitralaya/pkg/logger"
	"github.com/chitralaya/chitralaya/pkg/mail"
	"github.com/chitralaya/chitralaya/pkg/queue"
)

// Queue job names.
const (
	OrderConfirmationJob = "mail:order-confirmation"
	RepaintAlertJob      = "mail:repaint-alert"
)

// OrderPayload references the order a mail job is about.
type OrderPayload struct {
	OrderID uint `json:"orderId"`
}

// Register wires the job handlers into the queue. Call once at boot.
func Register(orders *repositories.OrderRepository) {
	queue.Register(OrderConfirmationJob, orderConfirmationHandler(orders))
	queue.Register(RepaintAlertJob, repaintAlertHandler(orders))
}

func orderConfirmationHandler(orders *repositories.OrderRepository) queue.Handler {
	return func(_ context.Context, payload []byte) error {
		order, err := loadOrder(orders, payload)
		if err != nil || order == nil {
			return err
		}

		if order.ShippingAddress.Email == "" {
			logger.Warn("order confirmation skipped, no email", "order_id", order.ID)
			return nil
		}

		body := confirmationBody(order)
		return mail.New().
			To(order.ShippingAddress.Email).
			Subject(fmt.Sprintf("Order #%d confirmed — Chitralaya", order.ID)).
			HTML(body).
			Send()
	}
}

func repaintAlertHandler(orders *repositories.OrderRepository) queue.Handler {
	return func(_ context.Context, payload []byte) error {
		inbox := config.GalleryInbox()
		if inbox == "" {
			return nil
		}

		order, err := loadOrder(orders, payload)
		if err != nil || order == nil {
			return err
		}

		var name string
		if len(order.Items) > 0 {
			name = order.Items[0].Name
		}

		body := fmt.Sprintf(
			"<p>A repaint was requested for <strong>%s</strong> (order #%d).</p>"+
				"<p>Requested by %s (%s).</p>",
			name, order.ID, order.ShippingAddress.FullName, order.ShippingAddress.Email,
		)

		return mail.New().
			To(inbox).
			Subject("New repaint request — " + name).
			HTML(body).
			Send()
	}
}

func loadOrder(orders *repositories.OrderRepository, payload []byte) (*models.Order, error) {
	var p OrderPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, err
	}

	order, err := orders.FindByID(p.OrderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// order deleted before the job ran; nothing to send
			return nil, nil
		}
		return nil, err
	}
	return order, nil
}

func confirmationBody(order *models.Order) string {
	items := ""
	for _, item := range order.Items {
		items += fmt.Sprintf("<li>%s × %d — ₹%.2f</li>", item.Name, item.Quantity, item.Price*float64(item.Quantity))
	}

	return fmt.Sprintf(
		"<h2>Thank you for your order, %s!</h2>"+
			"<p>Order #%d has been received.</p>"+
			"<ul>%s</ul>"+
			"<p><strong>Total: ₹%.2f</strong></p>",
		order.ShippingAddress.FullName, order.ID, items, order.TotalAmount,
	)
}
