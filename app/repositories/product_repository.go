package repositories

import (
	"gorm.io/gorm"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/pkg/orm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ProductFilter narrows catalog listings. ActiveOnly is set for the
// public storefront and cleared for the admin back office.
type ProductFilter struct {
	Category   string
	Search     string
	ActiveOnly bool
	Page       int
	Limit      int
}

func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *ProductRepository) FindByID(id uint, activeOnly bool) (*models.Product, error) {
	q := orm.WithDB(r.db).Where("id = ?", id)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var product models.Product
	if err := q.First(&product); err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *ProductRepository) List(filter ProductFilter) ([]models.Product, orm.Pagination, error) {
	q := orm.WithDB(r.db).Model(&models.Product{})

	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if filter.Category != "" && filter.Category != models.CategoryAll {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var products []models.Product
	p, err := q.Order("created_at desc").GetWithPagination(&products, filter.Page, filter.Limit)
	return products, p, err
}

func (r *ProductRepository) Save(product *models.Product) error {
	return r.db.Save(product).Error
}

// Deactivate soft-deletes: the row stays for order history and the
// admin list, the storefront stops seeing it.
func (r *ProductRepository) Deactivate(id uint) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepository) CountActive() (int64, error) {
	return orm.WithDB(r.db).Model(&models.Product{}).Where("is_active = ?", true).Count()
}
