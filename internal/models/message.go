package models

import "time"

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	IsRead    bool      `json:"is_read" gorm:"column:is_read;default:false"`
	CreatedAt time.Time `json:"created_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
