package models

import "time"

// Profile represents the portfolio owner. Only one row is expected.
type Profile struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	Title     string    `json:"title"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	About     string    `json:"about"`
	CreatedAt time.Time `json:"created_at"`
}

func (Profile) TableName() string {
	return "profile"
}
