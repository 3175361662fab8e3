package dto

import "time"

type AppointmentListDTO struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	DoctorID        *uint     `json:"doctor_id"`
	DoctorName      string    `json:"doctor_name"`
	Specialty       string    `json:"specialty"`
	AppointmentDate time.Time `json:"appointment_date"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
	ReminderSent24h bool      `json:"reminder_sent_24h"`
	ReminderSent1h  bool      `json:"reminder_sent_1h"`
}
