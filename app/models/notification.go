package models

import "time"

const NotificationRepaint = "repaint_request"

type Notification struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	UserID    uint     `gorm:"index" json:"userId"`
	User      *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ProductID uint     `gorm:"index" json:"productId"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	Type      string    `gorm:"size:40;default:repaint_request" json:"type"`
	Message   string    `gorm:"size:500" json:"message"`
	IsRead    bool      `gorm:"default:false;index" json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
