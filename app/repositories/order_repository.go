package repositories

import (
	"gorm.io/gorm"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/pkg/orm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// OrderFilter narrows the admin order listing.
type OrderFilter struct {
	OrderStatus   string
	PaymentStatus string
	Page          int
	Limit         int
}

func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := orm.WithDB(r.db).Preload("Items").Where("id = ?", id).First(&order); err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

// FindForUser returns the order only when it belongs to userID, so
// foreign orders read as missing.
func (r *OrderRepository) FindForUser(id, userID uint) (*models.Order, error) {
	var order models.Order
	err := orm.WithDB(r.db).
		Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&order)
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *OrderRepository) FindByProviderOrderID(providerOrderID string) (*models.Order, error) {
	var order models.Order
	err := orm.WithDB(r.db).
		Preload("Items").
		Where("provider_order_id = ?", providerOrderID).
		First(&order)
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

// FindByIdempotencyKey looks the key up across all users; the key is
// globally unique, so callers must check the returned order's owner
// before exposing it.
func (r *OrderRepository) FindByIdempotencyKey(key string) (*models.Order, error) {
	var order models.Order
	err := orm.WithDB(r.db).
		Preload("Items").
		Where("idempotency_key = ?", key).
		First(&order)
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *OrderRepository) ListForUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := orm.WithDB(r.db).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Get(&orders)
	return orders, err
}

func (r *OrderRepository) ListAll(filter OrderFilter) ([]models.Order, orm.Pagination, error) {
	q := orm.WithDB(r.db).Model(&models.Order{}).Preload("Items").Preload("User")

	if filter.OrderStatus != "" {
		q = q.Where("order_status = ?", filter.OrderStatus)
	}
	if filter.PaymentStatus != "" {
		q = q.Where("payment_status = ?", filter.PaymentStatus)
	}

	var orders []models.Order
	p, err := q.Order("created_at desc").GetWithPagination(&orders, filter.Page, filter.Limit)
	return orders, p, err
}

func (r *OrderRepository) Save(order *models.Order) error {
	return r.db.Save(order).Error
}

// DeleteIfPending removes the order only while payment is still
// pending. The guard and the delete run in one transaction so a
// concurrent payment completion cannot race past it; it returns
// (deleted, err).
func (r *OrderRepository) DeleteIfPending(id, userID uint) (bool, error) {
	deleted := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&order).Error; err != nil {
			return translate(err)
		}

		if order.PaymentStatus != models.PaymentPending {
			return nil
		}

		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&order).Error; err != nil {
			return err
		}

		deleted = true
		return nil
	})

	return deleted, err
}

func (r *OrderRepository) Count() (int64, error) {
	return orm.WithDB(r.db).Model(&models.Order{}).Count()
}

// Revenue sums completed payments.
func (r *OrderRepository) Revenue() (float64, error) {
	var total float64
	err := r.db.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentCompleted).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *OrderRepository) Recent(n int) ([]models.Order, error) {
	var orders []models.Order
	err := orm.WithDB(r.db).
		Preload("Items").
		Preload("User").
		Order("created_at desc").
		Limit(n).
		Get(&orders)
	return orders, err
}
