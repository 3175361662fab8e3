package models

import "time"

type Medication struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Dosage    string `gorm:"size:100" json:"dosage"`
	Frequency string `gorm:"size:50" json:"frequency"`
	Active    bool   `gorm:"index;not null" json:"active"`

	// Schedule holds "HH:MM" times of day, in order.
	Schedule []string `gorm:"serializer:json;type:text" json:"schedule"`

	LastReminderSent *time.Time `json:"last_reminder_sent"`
	ReminderCount    int        `gorm:"not null" json:"reminder_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
