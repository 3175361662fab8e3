package models

import "time"

const DefaultDoctorAvailability = "9:00 AM - 5:00 PM"

// Doctor is an entry of the directory patients book appointments with.
type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Specialty    string `gorm:"size:100;not null;index" json:"specialty"`
	Availability string `gorm:"size:100" json:"availability"`
	ImageURL     string `gorm:"size:255" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
}
