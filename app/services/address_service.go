package services

import (
	"errors"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/app/repositories"
	"github.com/chitralaya/chitralaya/app/services/apperr"
	"github.com/chitralaya/chitralaya/pkg/orm"
)

type AddressService struct {
	addresses *repositories.AddressRepository
}

func NewAddressService(addresses *repositories.AddressRepository) *AddressService {
	return &AddressService{addresses: addresses}
}

type AddressInput struct {
	Name      string `json:"name" validate:"required|max:100"`
	FullName  string `json:"fullName" validate:"required|max:200"`
	Email     string `json:"email" validate:"required|email"`
	Phone     string `json:"phone" validate:"required|digits:10"`
	Address   string `json:"address" validate:"required|max:500"`
	City      string `json:"city" validate:"required|max:100"`
	State     string `json:"state" validate:"required|max:100"`
	Pincode   string `json:"pincode" validate:"required|digits:6"`
	IsDefault bool   `json:"isDefault"`
}

func (s *AddressService) List(userID uint) ([]models.Address, error) {
	addresses, err := s.addresses.ListForUser(userID)
	if err != nil {
		return nil, apperr.Server("Failed to load addresses", err)
	}
	return addresses, nil
}

// AdminList pages through every user's addresses for the back office.
func (s *AddressService) AdminList(page, limit int) ([]models.Address, orm.Pagination, error) {
	addresses, p, err := s.addresses.ListAll(page, limit)
	if err != nil {
		return nil, p, apperr.Server("Failed to load addresses", err)
	}
	return addresses, p, nil
}

func (s *AddressService) Get(id, userID uint) (*models.Address, error) {
	address, err := s.addresses.FindForUser(id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("Address not found")
		}
		return nil, apperr.Server("Failed to load address", err)
	}
	return address, nil
}

// AdminGet loads any user's address.
func (s *AddressService) AdminGet(id uint) (*models.Address, error) {
	address, err := s.addresses.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("Address not found")
		}
		return nil, apperr.Server("Failed to load address", err)
	}
	return address, nil
}

// AdminUpdate edits any user's address. The label stays unique within
// the owner's book and the single-default guarantee holds for the
// owner.
func (s *AddressService) AdminUpdate(id uint, input AddressInput) (*models.Address, error) {
	address, err := s.AdminGet(id)
	if err != nil {
		return nil, err
	}

	taken, err := s.addresses.LabelTaken(address.UserID, input.Name, id)
	if err != nil {
		return nil, apperr.Server("Failed to check address label", err)
	}
	if taken {
		return nil, apperr.Conflict("An address with this label already exists")
	}

	address.User = nil
	address.Name = input.Name
	address.FullName = input.FullName
	address.Email = input.Email
	address.Phone = input.Phone
	address.Address = input.Address
	address.City = input.City
	address.State = input.State
	address.Pincode = input.Pincode
	address.IsDefault = input.IsDefault

	if err := s.addresses.Save(address); err != nil {
		return nil, apperr.Server("Failed to update address", err)
	}
	return address, nil
}

// AdminDelete removes any user's address.
func (s *AddressService) AdminDelete(id uint) error {
	if err := s.addresses.DeleteByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperr.NotFound("Address not found")
		}
		return apperr.Server("Failed to delete address", err)
	}
	return nil
}

// Default returns the user's default entry, 404 when none is set.
func (s *AddressService) Default(userID uint) (*models.Address, error) {
	address, err := s.addresses.DefaultForUser(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("No default address set")
		}
		return nil, apperr.Server("Failed to load address", err)
	}
	return address, nil
}

func (s *AddressService) Create(userID uint, input AddressInput) (*models.Address, error) {
	taken, err := s.addresses.LabelTaken(userID, input.Name, 0)
	if err != nil {
		return nil, apperr.Server("Failed to check address label", err)
	}
	if taken {
		return nil, apperr.Conflict("An address with this label already exists")
	}

	address := &models.Address{
		UserID:    userID,
		Name:      input.Name,
		FullName:  input.FullName,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		Pincode:   input.Pincode,
		IsDefault: input.IsDefault,
	}
	if err := s.addresses.Create(address); err != nil {
		return nil, apperr.Server("Failed to create address", err)
	}
	return address, nil
}

func (s *AddressService) Update(id, userID uint, input AddressInput) (*models.Address, error) {
	address, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}

	taken, err := s.addresses.LabelTaken(userID, input.Name, id)
	if err != nil {
		return nil, apperr.Server("Failed to check address label", err)
	}
	if taken {
		return nil, apperr.Conflict("An address with this label already exists")
	}

	address.Name = input.Name
	address.FullName = input.FullName
	address.Email = input.Email
	address.Phone = input.Phone
	address.Address = input.Address
	address.City = input.City
	address.State = input.State
	address.Pincode = input.Pincode
	address.IsDefault = input.IsDefault

	if err := s.addresses.Save(address); err != nil {
		return nil, apperr.Server("Failed to update address", err)
	}
	return address, nil
}

// SetDefault promotes the address; the repository clears every other
// default of the user in the same transaction.
func (s *AddressService) SetDefault(id, userID uint) (*models.Address, error) {
	address, err := s.addresses.SetDefault(id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("Address not found")
		}
		return nil, apperr.Server("Failed to set default address", err)
	}
	return address, nil
}

func (s *AddressService) Delete(id, userID uint) error {
	if err := s.addresses.Delete(id, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperr.NotFound("Address not found")
		}
		return apperr.Server("Failed to delete address", err)
	}
	return nil
}
