package models

import "time"

type SensorReading struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID      uint    `gorm:"index;not null" json:"user_id"`
	ReadingType string  `gorm:"size:50;not null" json:"reading_type"`
	Value       float64 `json:"value"`
	Unit        string  `gorm:"size:20" json:"unit"`
	Source      string  `gorm:"size:50" json:"source"`
	DeviceName  string  `gorm:"size:100" json:"device_name"`

	RecordedAt time.Time `gorm:"index" json:"recorded_at"`
}
