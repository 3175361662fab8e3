package reminder

import (
	"context"
	"time"

	"github.com/BruksfildServices01/baymax-health/internal/models"
)

// Marker names the appointment column that de-duplicates one reminder window.
type Marker string

const (
	Marker24h Marker = "reminder_sent_24h"
	Marker1h  Marker = "reminder_sent_1h"
)

// RemindableStatuses are the appointment statuses that still get reminders.
var RemindableStatuses = []string{"scheduled", "pending"}

// Lookups return (nil, nil) when the record does not exist.
type Repository interface {
	PreferenceStore

	FindUser(ctx context.Context, userID uint) (*models.User, error)

	// ListDueAppointments returns remindable appointments dated in
	// [from, to] whose marker is not set.
	ListDueAppointments(
		ctx context.Context,
		from time.Time,
		to time.Time,
		marker Marker,
	) ([]models.Appointment, error)

	MarkAppointmentReminder(
		ctx context.Context,
		appointmentID uint,
		marker Marker,
		at time.Time,
	) error

	ListActiveMedications(ctx context.Context) ([]models.Medication, error)

	// RecordMedicationReminder sets last_reminder_sent and increments
	// reminder_count.
	RecordMedicationReminder(
		ctx context.Context,
		medicationID uint,
		at time.Time,
	) error

	ListDailyGoalSubscribers(ctx context.Context) ([]models.EmailPreferences, error)
}

type PreferenceStore interface {
	FindPreferences(ctx context.Context, userID uint) (*models.EmailPreferences, error)
}
