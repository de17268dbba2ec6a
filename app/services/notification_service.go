package services

import (
	"context"
	"errors"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/app/repositories"
	"github.com/chitralaya/chitralaya/app/services/apperr"
	"github.com/chitralaya/chitralaya/pkg/event"
	"github.com/chitralaya/chitralaya/pkg/orm"
)

// NotificationCreated is emitted after a notification is persisted;
// the server wires it to the admin websocket feed.
const NotificationCreated = "notification.created"

type NotificationService struct {
	notifications *repositories.NotificationRepository
	products      *repositories.ProductRepository
}

func NewNotificationService(
	notifications *repositories.NotificationRepository,
	products *repositories.ProductRepository,
) *NotificationService {
	return &NotificationService{notifications: notifications, products: products}
}

// CreateRepaint records a repaint-request notification and emits the
// created event for the admin live feed.
func (s *NotificationService) CreateRepaint(userID, productID uint) (*models.Notification, error) {
	product, err := s.products.FindByID(productID, true)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, apperr.Server("Failed to load product", err)
	}

	n := &models.Notification{
		UserID:    userID,
		ProductID: product.ID,
		Type:      models.NotificationRepaint,
		Message:   "Repaint request for: " + product.Name,
	}
	if err := s.notifications.Create(n); err != nil {
		return nil, apperr.Server("Failed to create notification", err)
	}

	event.Emit(context.Background(), NotificationCreated, n)

	return n, nil
}

func (s *NotificationService) List(isRead *bool, page, limit int) ([]models.Notification, orm.Pagination, error) {
	notifications, p, err := s.notifications.List(repositories.NotificationFilter{
		IsRead: isRead,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, p, apperr.Server("Failed to load notifications", err)
	}
	return notifications, p, nil
}

func (s *NotificationService) UnreadCount() (int64, error) {
	count, err := s.notifications.UnreadCount()
	if err != nil {
		return 0, apperr.Server("Failed to count notifications", err)
	}
	return count, nil
}

// Get returns the notification and marks it read as a side effect of
// viewing it.
func (s *NotificationService) Get(id uint) (*models.Notification, error) {
	n, err := s.notifications.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("Notification not found")
		}
		return nil, apperr.Server("Failed to load notification", err)
	}

	if !n.IsRead {
		n.IsRead = true
		if err := s.notifications.Save(n); err != nil {
			return nil, apperr.Server("Failed to mark notification read", err)
		}
	}

	return n, nil
}

// SetRead explicitly sets the read flag.
func (s *NotificationService) SetRead(id uint, isRead bool) (*models.Notification, error) {
	n, err := s.notifications.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("Notification not found")
		}
		return nil, apperr.Server("Failed to load notification", err)
	}

	n.IsRead = isRead
	if err := s.notifications.Save(n); err != nil {
		return nil, apperr.Server("Failed to update notification", err)
	}
	return n, nil
}
