package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/baymax-health/internal/domain/reminder"
)

type appointmentWindow struct {
	marker     reminder.Marker
	lookahead  time.Duration
	hoursUntil int
}

// Both windows are evaluated on every tick, 24h first.
var appointmentWindows = []appointmentWindow{
	{marker: reminder.Marker24h, lookahead: 25 * time.Hour, hoursUntil: 24},
	{marker: reminder.Marker1h, lookahead: 2 * time.Hour, hoursUntil: 1},
}

// CheckAppointmentReminders runs one tick of the appointment job.
func (s *Scheduler) CheckAppointmentReminders(ctx context.Context) {
	runID := uuid.NewString()
	now := s.now()

	for _, w := range appointmentWindows {
		if err := s.remindAppointments(ctx, runID, now, w); err != nil {
			s.logger.Printf("run %s: error checking appointment reminders (%s): %v", runID, w.marker, err)
			return
		}
	}
}

func (s *Scheduler) remindAppointments(
	ctx context.Context,
	runID string,
	now time.Time,
	w appointmentWindow,
) error {

	due, err := s.repo.ListDueAppointments(ctx, now, now.Add(w.lookahead), w.marker)
	if err != nil {
		return err
	}

	for _, apt := range due {
		user, err := s.repo.FindUser(ctx, apt.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			s.logger.Printf("run %s: appointment %d: user %d not found, skipping", runID, apt.ID, apt.UserID)
			continue
		}

		if !s.prefs.Enabled(ctx, apt.UserID, reminder.CategoryAppointment) {
			continue
		}

		at := apt.AppointmentDate.In(s.loc)
		sent := s.notifier.SendAppointmentReminder(
			ctx,
			user.Email,
			user.DisplayName(),
			orDefault(apt.DoctorName, "Doctor"),
			orDefault(apt.Specialty, "General"),
			at.Format("January 02, 2006"),
			at.Format("03:04 PM"),
			w.hoursUntil,
		)
		if !sent {
			s.logger.Printf("run %s: %dh reminder for appointment %d was not delivered", runID, w.hoursUntil, apt.ID)
		}

		s.dispatchAudit(apt.UserID, sendAction(sent), "appointment", apt.ID, map[string]any{
			"hours_until": w.hoursUntil,
			"run_id":      runID,
		})

		if !s.policy.ShouldRecord(sent) {
			continue
		}

		if err := s.repo.MarkAppointmentReminder(ctx, apt.ID, w.marker, now); err != nil {
			return err
		}
		s.logger.Printf("run %s: sent %dh reminder for appointment %d", runID, w.hoursUntil, apt.ID)
	}

	return nil
}
