package models

import "time"

// Skill represents a skill shown on the portfolio.
type Skill struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null"`
	Emoji       string    `json:"emoji"`
	Color       string    `json:"color"`
	Proficiency int       `json:"proficiency" gorm:"default:0"` // 0-100, not enforced
	CreatedAt   time.Time `json:"created_at"`
}

// TableName overrides the table name used by GORM.
func (Skill) TableName() string {
	return "skills"
}
