package repositories

import (
	"gorm.io/gorm"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/pkg/orm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// NotificationFilter narrows the admin listing. IsRead is a tri-state:
// nil means both read and unread.
type NotificationFilter struct {
	IsRead *bool
	Page   int
	Limit  int
}

func (r *NotificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

func (r *NotificationRepository) FindByID(id uint) (*models.Notification, error) {
	var n models.Notification
	err := orm.WithDB(r.db).
		Preload("User").
		Preload("Product").
		Where("id = ?", id).
		First(&n)
	if err != nil {
		return nil, translate(err)
	}
	return &n, nil
}

func (r *NotificationRepository) List(filter NotificationFilter) ([]models.Notification, orm.Pagination, error) {
	q := orm.WithDB(r.db).
		Model(&models.Notification{}).
		Preload("User").
		Preload("Product")

	if filter.IsRead != nil {
		q = q.Where("is_read = ?", *filter.IsRead)
	}

	var notifications []models.Notification
	p, err := q.Order("created_at desc").GetWithPagination(&notifications, filter.Page, filter.Limit)
	return notifications, p, err
}

func (r *NotificationRepository) UnreadCount() (int64, error) {
	return orm.WithDB(r.db).
		Model(&models.Notification{}).
		Where("is_read = ?", false).
		Count()
}

func (r *NotificationRepository) Save(n *models.Notification) error {
	return r.db.Save(n).Error
}
