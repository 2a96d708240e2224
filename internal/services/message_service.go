package services

import (
	"time"

	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"go.uber.org/zap"
)

// EventPublisher delivers notifications about newly received contact messages.
type EventPublisher interface {
	PublishContactReceived(event map[string]interface{}) error
}

// MessageService handles business logic related to contact messages.
type MessageService struct {
	repo      repositories.MessageRepository
	publisher EventPublisher // optional
	logger    *zap.Logger
}

// NewMessageService creates a new MessageService. publisher may be nil, in
// which case no notifications are sent.
func NewMessageService(repo repositories.MessageRepository, publisher EventPublisher, logger *zap.Logger) *MessageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// SaveContactMessage stores an unread message and returns its ID. The caller
// is expected to have checked that all three fields are present.
func (s *MessageService) SaveContactMessage(name, email, message string) (uint, error) {
	msg := &models.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.repo.Create(msg); err != nil {
		return 0, err
	}

	s.notify(msg)
	return msg.ID, nil
}

// notify publishes a contact.received event. Failures are logged only; the
// message is already stored.
func (s *MessageService) notify(msg *models.ContactMessage) {
	if s.publisher == nil {
		s.logger.Debug("Event publisher not configured, skipping contact notification", zap.Uint("message_id", msg.ID))
		return
	}

	event := map[string]interface{}{
		"event":      "contact.received",
		"message_id": msg.ID,
		"name":       msg.Name,
		"email":      msg.Email,
		"received":   time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publisher.PublishContactReceived(event); err != nil {
		s.logger.Warn("Failed to publish contact received event", zap.Uint("message_id", msg.ID), zap.Error(err))
		return
	}
	s.logger.Info("Published contact received event", zap.Uint("message_id", msg.ID))
}

// ListMessages retrieves all contact messages, newest first.
func (s *MessageService) ListMessages() ([]models.ContactMessage, error) {
	return s.repo.GetAll()
}

// MarkMessageRead flags a message as read. Unknown IDs are ignored.
func (s *MessageService) MarkMessageRead(id uint) error {
	return s.repo.MarkRead(id)
}

// DeleteMessage removes a message. Unknown IDs are ignored.
func (s *MessageService) DeleteMessage(id uint) error {
	return s.repo.Delete(id)
}
