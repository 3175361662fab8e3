package models

import "time"

// HealthLog is a user's journal entry for one calendar day.
type HealthLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID  uint   `gorm:"not null;uniqueIndex:idx_health_logs_user_date" json:"user_id"`
	LogDate string `gorm:"size:10;not null;uniqueIndex:idx_health_logs_user_date" json:"log_date"` // YYYY-MM-DD

	Symptoms    []string `gorm:"serializer:json;type:text" json:"symptoms"`
	Medications []string `gorm:"serializer:json;type:text" json:"medications"`
	Mood        string   `gorm:"size:30" json:"mood"`
	SleepHours  *float64 `json:"sleep_hours"`
	EnergyLevel *int     `json:"energy_level"`
	Notes       string   `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
