// Package migration tracks schema migrations in a `migrations` table
// and applies registered steps in order.
package migration

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/chitralaya/chitralaya/pkg/logger"
)

type Migration struct {
	Name string
	Up   func(db *gorm.DB) error
	Down func(db *gorm.DB) error
}

type record struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:191"`
	AppliedAt time.Time
}

func (record) TableName() string { return "migrations" }

var registered []Migration

// Register adds a migration. Names must be unique and sortable
// (timestamp prefixes).
func Register(m Migration) {
	registered = append(registered, m)
}

// Run applies every pending migration in name order.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&record{}); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	applied, err := appliedNames(db)
	if err != nil {
		return err
	}

	pending := make([]Migration, 0, len(registered))
	for _, m := range registered {
		if !applied[m.Name] {
			pending = append(pending, m)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].Name < pending[j].Name })

	for _, m := range pending {
		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&record{Name: m.Name, AppliedAt: time.Now()}).Error
		}); err != nil {
			return fmt.Errorf("migration: %s: %w", m.Name, err)
		}
		logger.Info("migration applied", "name", m.Name)
	}

	return nil
}

// Rollback reverts the most recently applied migration.
func Rollback(db *gorm.DB) error {
	var last record
	if err := db.Order("name desc").First(&last).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}

	for _, m := range registered {
		if m.Name != last.Name {
			continue
		}
		if m.Down == nil {
			return fmt.Errorf("migration: %s has no down step", m.Name)
		}

		return db.Transaction(func(tx *gorm.DB) error {
			if err := m.Down(tx); err != nil {
				return err
			}
			if err := tx.Delete(&record{}, "name = ?", m.Name).Error; err != nil {
				return err
			}
			logger.Info("migration rolled back", "name", m.Name)
			return nil
		})
	}

	return fmt.Errorf("migration: %s applied but not registered", last.Name)
}

// Status lists each registered migration and whether it has run.
func Status(db *gorm.DB) (map[string]bool, error) {
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, err
	}

	applied, err := appliedNames(db)
	if err != nil {
		return nil, err
	}

	status := make(map[string]bool, len(registered))
	for _, m := range registered {
		status[m.Name] = applied[m.Name]
	}
	return status, nil
}

func appliedNames(db *gorm.DB) (map[string]bool, error) {
	var records []record
	if err := db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("migration: list applied: %w", err)
	}

	applied := make(map[string]bool, len(records))
	for _, r := range records {
		applied[r.Name] = true
	}
	return applied, nil
}
