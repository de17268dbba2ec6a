package repositories

import (
	"gorm.io/gorm"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/pkg/orm"
)

type AddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) ListForUser(userID uint) ([]models.Address, error) {
	var addresses []models.Address
	err := orm.WithDB(r.db).
		Where("user_id = ?", userID).
		Order("is_default desc, created_at desc").
		Get(&addresses)
	return addresses, err
}

// ListAll pages through every user's addresses for the back office.
func (r *AddressRepository) ListAll(page, limit int) ([]models.Address, orm.Pagination, error) {
	var addresses []models.Address
	p, err := orm.WithDB(r.db).
		Model(&models.Address{}).
		Preload("User").
		Order("created_at desc").
		GetWithPagination(&addresses, page, limit)
	return addresses, p, err
}

// FindByID loads any user's address for the back office.
func (r *AddressRepository) FindByID(id uint) (*models.Address, error) {
	var address models.Address
	if err := orm.WithDB(r.db).Preload("User").Where("id = ?", id).First(&address); err != nil {
		return nil, translate(err)
	}
	return &address, nil
}

// DeleteByID removes any user's address for the back office.
func (r *AddressRepository) DeleteByID(id uint) error {
	res := r.db.Delete(&models.Address{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AddressRepository) FindForUser(id, userID uint) (*models.Address, error) {
	var address models.Address
	if err := orm.WithDB(r.db).Where("id = ? AND user_id = ?", id, userID).First(&address); err != nil {
		return nil, translate(err)
	}
	return &address, nil
}

func (r *AddressRepository) DefaultForUser(userID uint) (*models.Address, error) {
	var address models.Address
	err := orm.WithDB(r.db).
		Where("user_id = ? AND is_default = ?", userID, true).
		First(&address)
	if err != nil {
		return nil, translate(err)
	}
	return &address, nil
}

func (r *AddressRepository) LabelTaken(userID uint, name string, excludeID uint) (bool, error) {
	q := orm.WithDB(r.db).
		Model(&models.Address{}).
		Where("user_id = ? AND name = ?", userID, name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	n, err := q.Count()
	return n > 0, err
}

// Create inserts the address. When it is flagged default, the user's
// other defaults are cleared in the same transaction so exactly one
// remains.
func (r *AddressRepository) Create(address *models.Address) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if address.IsDefault {
			if err := clearDefaults(tx, address.UserID, 0); err != nil {
				return err
			}
		}
		return tx.Create(address).Error
	})
}

// Save updates the address under the same single-default guarantee.
func (r *AddressRepository) Save(address *models.Address) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if address.IsDefault {
			if err := clearDefaults(tx, address.UserID, address.ID); err != nil {
				return err
			}
		}
		return tx.Save(address).Error
	})
}

// SetDefault promotes the address and demotes every other entry of the
// user atomically.
func (r *AddressRepository) SetDefault(id, userID uint) (*models.Address, error) {
	var address models.Address

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&address).Error; err != nil {
			return translate(err)
		}
		if err := clearDefaults(tx, userID, id); err != nil {
			return err
		}
		address.IsDefault = true
		return tx.Save(&address).Error
	})
	if err != nil {
		return nil, err
	}

	return &address, nil
}

func (r *AddressRepository) Delete(id, userID uint) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Address{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func clearDefaults(tx *gorm.DB, userID, keepID uint) error {
	q := tx.Model(&models.Address{}).Where("user_id = ? AND is_default = ?", userID, true)
	if keepID != 0 {
		q = q.Where("id <> ?", keepID)
	}
	return q.Update("is_default", false).Error
}
