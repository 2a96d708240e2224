package repositories

import (
	"errors"
	"fmt"
	"time"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// VisitorRepository defines the interface for the visitor counter.
type VisitorRepository interface {
	GetCount() (int64, error)
	IncrementCount() (int64, error)
}

// GORMVisitorRepository is a GORM implementation of VisitorRepository.
type GORMVisitorRepository struct {
	db *gorm.DB
}

// NewGORMVisitorRepository creates a new instance of GORMVisitorRepository.
func NewGORMVisitorRepository(db *gorm.DB) *GORMVisitorRepository {
	return &GORMVisitorRepository{
		db: db,
	}
}

// GetCount returns the current visit count, or 0 when no counter row exists.
func (r *GORMVisitorRepository) GetCount() (int64, error) {
	return currentCount(r.db)
}

// IncrementCount adds one visit and returns the new count. The update and the
// read-back share a transaction so the returned value is the one written here.
// Without a counter row nothing is updated and 0 is returned.
func (r *GORMVisitorRepository) IncrementCount() (int64, error) {
	var count int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Model(&models.VisitorCounter{}).
			Updates(map[string]interface{}{
				"count":        gorm.Expr("count + 1"),
				"last_updated": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}

		var err error
		count, err = currentCount(tx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to increment visitor count: %w", err)
	}
	return count, nil
}

func currentCount(db *gorm.DB) (int64, error) {
	var counter models.VisitorCounter
	if err := db.Order("id ASC").Limit(1).Take(&counter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get visitor count: %w", err)
	}
	return counter.Count, nil
}
