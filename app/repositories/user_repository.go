// Package repositories holds the persistence layer. Each repository
// wraps a *gorm.DB so tests can run against in-memory SQLite.
package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/pkg/orm"
)

// ErrNotFound normalizes gorm.ErrRecordNotFound for the service layer.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := orm.WithDB(r.db).Where("id = ?", id).First(&user); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := orm.WithDB(r.db).Where("email = ?", email).First(&user); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) EmailTaken(email string) (bool, error) {
	n, err := orm.WithDB(r.db).Model(&models.User{}).Where("email = ?", email).Count()
	return n > 0, err
}

func (r *UserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) List(page, limit int) ([]models.User, orm.Pagination, error) {
	var users []models.User
	p, err := orm.WithDB(r.db).
		Model(&models.User{}).
		Order("created_at desc").
		GetWithPagination(&users, page, limit)
	return users, p, err
}

func (r *UserRepository) Delete(id uint) error {
	res := r.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) Count() (int64, error) {
	return orm.WithDB(r.db).Model(&models.User{}).Count()
}
