package models

import "time"

// VisitorCounter holds the site-wide visit count. Exactly one row exists after seeding.
type VisitorCounter struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Count       int64     `json:"count" gorm:"not null;default:0"`
	LastUpdated time.Time `json:"last_updated" gorm:"column:last_updated;autoUpdateTime"`
}

func (VisitorCounter) TableName() string {
	return "visitors"
}
