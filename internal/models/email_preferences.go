package models

import "time"

// A nil Enabled means the category was never configured.
type AppointmentReminderSettings struct {
	Enabled      *bool `json:"enabled,omitempty"`
	AdvanceHours []int `gorm:"serializer:json;type:text" json:"advance_hours,omitempty"`
}

type MedicationReminderSettings struct {
	Enabled *bool `json:"enabled,omitempty"`
}

type DailyGoalReminderSettings struct {
	Enabled *bool  `json:"enabled,omitempty"`
	Time    string `gorm:"size:5" json:"time,omitempty"`
}

type EmailPreferences struct {
	ID uint `gorm:"primaryKey" json:"-"`

	UserID uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Email  string `gorm:"size:100" json:"email"`

	NotificationsEnabled bool `gorm:"not null" json:"notifications_enabled"`

	AppointmentReminders AppointmentReminderSettings `gorm:"embedded;embeddedPrefix:appointment_reminders_" json:"appointment_reminders"`
	MedicationReminders  MedicationReminderSettings  `gorm:"embedded;embeddedPrefix:medication_reminders_" json:"medication_reminders"`
	DailyGoalReminders   DailyGoalReminderSettings   `gorm:"embedded;embeddedPrefix:daily_goal_reminders_" json:"daily_goal_reminders"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultEmailPreferences is what a user without a stored record gets.
func DefaultEmailPreferences(userID uint) EmailPreferences {
	return EmailPreferences{
		UserID:               userID,
		NotificationsEnabled: true,
		AppointmentReminders: AppointmentReminderSettings{Enabled: BoolPtr(true), AdvanceHours: []int{24, 1}},
		MedicationReminders:  MedicationReminderSettings{Enabled: BoolPtr(true)},
		DailyGoalReminders:   DailyGoalReminderSettings{Enabled: BoolPtr(true), Time: "08:00"},
	}
}

func BoolPtr(b bool) *bool {
	return &b
}
