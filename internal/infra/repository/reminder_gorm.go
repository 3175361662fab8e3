package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/baymax-health/internal/domain/reminder"
	"github.com/BruksfildServices01/baymax-health/internal/models"
)

// ReminderGormRepository is the store the reminder scheduler reads from
// and writes its dispatch markers to.
type ReminderGormRepository struct {
	db *gorm.DB
}

func NewReminderGormRepository(db *gorm.DB) *ReminderGormRepository {
	return &ReminderGormRepository{db: db}
}

// --------------------------------------------------
// Users / Preferences
// --------------------------------------------------

func (r *ReminderGormRepository) FindUser(
	ctx context.Context,
	userID uint,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *ReminderGormRepository) FindPreferences(
	ctx context.Context,
	userID uint,
) (*models.EmailPreferences, error) {

	var prefs models.EmailPreferences
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *ReminderGormRepository) ListDailyGoalSubscribers(
	ctx context.Context,
) ([]models.EmailPreferences, error) {

	var prefs []models.EmailPreferences
	if err := r.db.WithContext(ctx).
		Where("daily_goal_reminders_enabled = ?", true).
		Order("user_id ASC").
		Find(&prefs).Error; err != nil {
		return nil, err
	}
	return prefs, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *ReminderGormRepository) ListDueAppointments(
	ctx context.Context,
	from time.Time,
	to time.Time,
	marker reminder.Marker,
) ([]models.Appointment, error) {

	column, err := markerColumn(marker)
	if err != nil {
		return nil, err
	}

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("appointment_date BETWEEN ? AND ?", from, to).
		Where("status IN ?", reminder.RemindableStatuses).
		Where(column+" = ?", false).
		Order("appointment_date ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ReminderGormRepository) MarkAppointmentReminder(
	ctx context.Context,
	appointmentID uint,
	marker reminder.Marker,
	at time.Time,
) error {

	column, err := markerColumn(marker)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		UpdateColumns(map[string]any{
			column:             true,
			"last_reminder_at": at,
		}).Error
}

// --------------------------------------------------
// Medications
// --------------------------------------------------

func (r *ReminderGormRepository) ListActiveMedications(
	ctx context.Context,
) ([]models.Medication, error) {

	var meds []models.Medication
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id ASC").
		Find(&meds).Error; err != nil {
		return nil, err
	}
	return meds, nil
}

func (r *ReminderGormRepository) RecordMedicationReminder(
	ctx context.Context,
	medicationID uint,
	at time.Time,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Medication{}).
		Where("id = ?", medicationID).
		UpdateColumns(map[string]any{
			"last_reminder_sent": at,
			"reminder_count":     gorm.Expr("reminder_count + ?", 1),
		}).Error
}

// only known marker names are ever interpolated into SQL
func markerColumn(m reminder.Marker) (string, error) {
	switch m {
	case reminder.Marker24h, reminder.Marker1h:
		return string(m), nil
	default:
		return "", fmt.Errorf("unknown reminder marker %q", m)
	}
}

// Compile-time check
var _ reminder.Repository = (*ReminderGormRepository)(nil)
