package reminder

import "github.com/BruksfildServices01/baymax-health/internal/models"

type Category string

const (
	CategoryAppointment Category = "appointment_reminders"
	CategoryMedication  Category = "medication_reminders"
	CategoryDailyGoal   Category = "daily_goal_reminders"
)

// enabledFlag returns the explicit flag stored for the category, or nil
// when the sub-object was never configured.
func enabledFlag(p *models.EmailPreferences, c Category) *bool {
	switch c {
	case CategoryAppointment:
		return p.AppointmentReminders.Enabled
	case CategoryMedication:
		return p.MedicationReminders.Enabled
	case CategoryDailyGoal:
		return p.DailyGoalReminders.Enabled
	}
	return nil
}
