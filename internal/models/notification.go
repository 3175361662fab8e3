package models

import "time"

// In-app notification shown in the user's notification center.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID  uint   `gorm:"index;not null" json:"user_id"`
	Title   string `gorm:"size:100;not null" json:"title"`
	Message string `gorm:"size:255" json:"message"`
	Type    string `gorm:"size:20" json:"type"`
	IsRead  bool   `gorm:"not null" json:"is_read"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
