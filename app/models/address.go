package models

import "time"

// Address is one labelled entry in a user's address book. Labels are
// unique per user; at most one entry per user is the default.
type Address struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID uint  `gorm:"index:idx_addresses_user_name,unique" json:"userId"`
	User   *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	// Name is the user-facing label ("Home", "Studio").
	Name      string    `gorm:"size:100;index:idx_addresses_user_name,unique" json:"name"`
	FullName  string    `gorm:"size:200" json:"fullName"`
	Email     string    `gorm:"size:191" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Address   string    `gorm:"size:500" json:"address"`
	City      string    `gorm:"size:100" json:"city"`
	State     string    `gorm:"size:100" json:"state"`
	Pincode   string    `gorm:"size:10" json:"pincode"`
	IsDefault bool      `gorm:"default:false" json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
