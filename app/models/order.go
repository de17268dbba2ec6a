package models

import "time"

// Payment lifecycle.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// Fulfilment lifecycle.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Payment methods.
const (
	MethodUPI  = "upi"
	MethodCard = "card"
	MethodCOD  = "cod"
)

// ShippingAddress is a point-in-time snapshot embedded in the order,
// so later address-book edits never rewrite order history.
type ShippingAddress struct {
	FullName string `gorm:"size:200" json:"fullName"`
	Email    string `gorm:"size:191" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`
	Address  string `gorm:"size:500" json:"address"`
	City     string `gorm:"size:100" json:"city"`
	State    string `gorm:"size:100" json:"state"`
	Pincode  string `gorm:"size:10" json:"pincode"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `json:"productId"`
	Name      string  `gorm:"size:200" json:"name"`
	Quantity  int     `json:"quantity"`
	// Price is the catalog unit price captured when the order was
	// placed; client-submitted prices are never stored.
	Price float64 `json:"price"`
	Image string  `gorm:"size:500" json:"image"`
}

type Order struct {
	ID     uint        `gorm:"primaryKey" json:"id"`
	UserID uint        `gorm:"index" json:"userId"`
	User   *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items  []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	TotalAmount     float64         `json:"totalAmount"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:ship_" json:"shippingAddress"`

	PaymentStatus string `gorm:"size:20;default:pending;index" json:"paymentStatus"`
	OrderStatus   string `gorm:"size:20;default:pending;index" json:"orderStatus"`
	PaymentMethod string `gorm:"size:20" json:"paymentMethod"`
	PaymentID     string `gorm:"size:100" json:"paymentId,omitempty"`
	// ProviderOrderID is the gateway-side intent this order is paid
	// against.
	ProviderOrderID string `gorm:"size:100;index" json:"providerOrderId,omitempty"`

	Notes            string  `gorm:"size:1000" json:"notes,omitempty"`
	IsRepaintRequest bool    `gorm:"default:false" json:"isRepaintRequest"`
	IdempotencyKey   *string `gorm:"uniqueIndex;size:100" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}
