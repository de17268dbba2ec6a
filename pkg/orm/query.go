// Package orm is a thin, chainable wrapper over GORM used by the
// repository layer. It adds offset/limit pagination with the metadata the
// storefront API returns.
package orm

import (
	"math"

	"github.com/chitralaya/chitralaya/pkg/database"
	"gorm.io/gorm"
)

// Pagination describes one page of a larger result set.
type Pagination struct {
	Count int   `json:"count"` // items on this page
	Total int64 `json:"total"` // items matching the query
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

// HasNext reports whether a later page exists.
func (p Pagination) HasNext() bool { return p.Page < p.Pages }

// HasPrev reports whether an earlier page exists.
func (p Pagination) HasPrev() bool { return p.Page > 1 }

type Query struct {
	db *gorm.DB
}

// DB starts a query chain on the global connection.
func DB() *Query {
	return &Query{db: database.DB}
}

// WithDB starts a query chain on an explicit connection (transactions, tests).
func WithDB(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(value string) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Limit(n int) *Query {
	return &Query{db: q.db.Limit(n)}
}

func (q *Query) Preload(assoc string) *Query {
	return &Query{db: q.db.Preload(assoc)}
}

func (q *Query) Get(dest interface{}) error {
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	return q.db.First(dest).Error
}

func (q *Query) Count() (int64, error) {
	var n int64
	err := q.db.Count(&n).Error
	return n, err
}

func (q *Query) Create(v interface{}) error {
	return q.db.Create(v).Error
}

func (q *Query) Save(v interface{}) error {
	return q.db.Save(v).Error
}

func (q *Query) Updates(values interface{}) error {
	return q.db.Updates(values).Error
}

func (q *Query) Delete(v interface{}) error {
	return q.db.Delete(v).Error
}

// GetWithPagination fills dest with one page and returns its metadata.
// page and limit are clamped to sane minimums.
func (q *Query) GetWithPagination(dest interface{}, page, limit int) (Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := q.db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	offset := (page - 1) * limit
	if err := q.db.Offset(offset).Limit(limit).Find(dest).Error; err != nil {
		return Pagination{}, err
	}

	pages := int(math.Ceil(float64(total) / float64(limit)))

	// Count of rows actually returned on this page.
	count := limit
	if remaining := total - int64(offset); remaining < int64(limit) {
		if remaining < 0 {
			remaining = 0
		}
		count = int(remaining)
	}

	return Pagination{Count: count, Total: total, Page: page, Pages: pages}, nil
}

// Transaction runs fn inside a database transaction on the global connection.
func Transaction(fn func(tx *gorm.DB) error) error {
	return database.DB.Transaction(fn)
}
