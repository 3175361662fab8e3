package scheduler

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/baymax-health/internal/domain/reminder"
)

// CheckMedicationReminders runs one tick of the medication job.
func (s *Scheduler) CheckMedicationReminders(ctx context.Context) {
	runID := uuid.NewString()
	if err := s.remindMedications(ctx, runID); err != nil {
		s.logger.Printf("run %s: error checking medication reminders: %v", runID, err)
	}
}

func (s *Scheduler) remindMedications(ctx context.Context, runID string) error {
	now := s.now()
	current := now.In(s.loc).Format("15:04")

	meds, err := s.repo.ListActiveMedications(ctx)
	if err != nil {
		return err
	}

	for _, med := range meds {
		// one send per medication per tick; the cooldown covers every slot
		slot, ok := reminder.FirstMatch(med.Schedule, current, reminder.DefaultWindowMinutes)
		if !ok {
			continue
		}

		if med.LastReminderSent != nil && now.Sub(*med.LastReminderSent) < reminder.MedicationCooldown {
			continue
		}

		user, err := s.repo.FindUser(ctx, med.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			s.logger.Printf("run %s: medication %d: user %d not found, skipping", runID, med.ID, med.UserID)
			continue
		}

		if !s.prefs.Enabled(ctx, med.UserID, reminder.CategoryMedication) {
			continue
		}

		sent := s.notifier.SendMedicationReminder(
			ctx,
			user.Email,
			user.DisplayName(),
			orDefault(med.Name, "Medication"),
			orDefault(med.Dosage, "1 tablet"),
			slot,
		)
		if !sent {
			s.logger.Printf("run %s: reminder for medication %d was not delivered", runID, med.ID)
		}

		s.dispatchAudit(med.UserID, sendAction(sent), "medication", med.ID, map[string]any{
			"slot":   slot,
			"run_id": runID,
		})

		if !s.policy.ShouldRecord(sent) {
			continue
		}

		if err := s.repo.RecordMedicationReminder(ctx, med.ID, now); err != nil {
			return err
		}
		s.logger.Printf("run %s: sent medication reminder for %s (%s)", runID, med.Name, slot)
	}

	return nil
}
