package models

import (
	"strings"
	"time"
)

// Project represents a portfolio project.
type Project struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description"`
	Technologies string    `json:"technologies"` // comma-joined, e.g. "HTML,CSS,JavaScript"
	ImageURL     string    `json:"image_url" gorm:"column:image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Project) TableName() string {
	return "projects"
}

// TechnologyList splits Technologies into trimmed, non-empty items.
func (p Project) TechnologyList() []string {
	var list []string
	for _, t := range strings.Split(p.Technologies, ",") {
		if t = strings.TrimSpace(t); t != "" {
			list = append(list, t)
		}
	}
	return list
}
