package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Product categories the storefront filters on. "all" is a query
// value only and never stored.
const (
	CategoryCanvas   = "canvas"
	CategorySketches = "sketches"
	CategoryColor    = "color"
	CategoryAll      = "all"
)

// StringList stores a []string as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("models: unsupported StringList source")
	}
}

type Product struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:200;index" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Price       float64    `json:"price"`
	Category    string     `gorm:"size:30;index" json:"category"`
	Images      StringList `gorm:"type:text" json:"images"`
	Artist      string     `gorm:"size:120;default:Chitralaya Artist" json:"artist"`
	Size        string     `gorm:"size:60" json:"size"`
	Medium      string     `gorm:"size:120" json:"medium"`
	// presentation hints the storefront grid consumes as-is
	CardClass     string `gorm:"size:60" json:"cardClass"`
	AdjustClass   string `gorm:"size:60" json:"adjustClass"`
	ImagePosition string `gorm:"size:60" json:"imagePosition"`

	IsActive  bool      `gorm:"default:true;index" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidCategory reports whether c is a storable product category.
func ValidCategory(c string) bool {
	return c == CategoryCanvas || c == CategorySketches || c == CategoryColor
}
