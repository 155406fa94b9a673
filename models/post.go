package models

import "time"

// Post is a parent content item that co-author terms are attached to.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AuthorID  uint      `gorm:"index;not null;default:0" json:"author"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Slug      string    `gorm:"size:200;index" json:"slug"`
	Status    string    `gorm:"size:20;default:'publish'" json:"status"`
	Type      string    `gorm:"size:20;default:'post'" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
