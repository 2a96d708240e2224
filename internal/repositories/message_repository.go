package repositories

import (
	"fmt"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines the interface for contact message data access.
type MessageRepository interface {
	GetAll() ([]models.ContactMessage, error)
	Create(message *models.ContactMessage) error
	MarkRead(id uint) error
	Delete(id uint) error
}

// GORMMessageRepository is a GORM implementation of MessageRepository.
type GORMMessageRepository struct {
	db *gorm.DB
}

// NewGORMMessageRepository creates a new instance of GORMMessageRepository.
func NewGORMMessageRepository(db *gorm.DB) *GORMMessageRepository {
	return &GORMMessageRepository{
		db: db,
	}
}

// GetAll retrieves all contact messages, newest first.
func (r *GORMMessageRepository) GetAll() ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	if err := r.db.Order("created_at DESC").Order("id DESC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to get all messages: %w", err)
	}
	return messages, nil
}

// Create stores a new unread message and sets its generated ID.
func (r *GORMMessageRepository) Create(message *models.ContactMessage) error {
	message.IsRead = false
	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// MarkRead flags a message as read. Unknown IDs are ignored.
func (r *GORMMessageRepository) MarkRead(id uint) error {
	res := r.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark message %d as read: %w", id, res.Error)
	}
	return nil
}

// Delete removes a message. Unknown IDs are ignored.
func (r *GORMMessageRepository) Delete(id uint) error {
	res := r.db.Delete(&models.ContactMessage{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete message %d: %w", id, res.Error)
	}
	return nil
}
