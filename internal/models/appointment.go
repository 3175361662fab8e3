package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`

	// set when booked from the doctors directory
	DoctorID *uint `gorm:"index" json:"doctor_id"`

	DoctorName      string    `gorm:"size:100;not null" json:"doctor_name"`
	Specialty       string    `gorm:"size:100" json:"specialty"`
	AppointmentDate time.Time `gorm:"index;not null" json:"appointment_date"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	// reminder dispatch markers, written only by the scheduler
	ReminderSent24h bool       `gorm:"column:reminder_sent_24h;not null" json:"reminder_sent_24h"`
	ReminderSent1h  bool       `gorm:"column:reminder_sent_1h;not null" json:"reminder_sent_1h"`
	LastReminderAt  *time.Time `json:"last_reminder_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
