package scheduler

import (
	"context"

	"github.com/google/uuid"
)

// SendDailyGoalReminders runs one tick of the daily goal job. There is no
// dispatch marker: a second tick on the same day sends again.
func (s *Scheduler) SendDailyGoalReminders(ctx context.Context) {
	runID := uuid.NewString()
	if err := s.remindDailyGoals(ctx, runID); err != nil {
		s.logger.Printf("run %s: error sending daily goal reminders: %v", runID, err)
	}
}

func (s *Scheduler) remindDailyGoals(ctx context.Context, runID string) error {
	subscribers, err := s.repo.ListDailyGoalSubscribers(ctx)
	if err != nil {
		return err
	}

	for _, prefs := range subscribers {
		user, err := s.repo.FindUser(ctx, prefs.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			s.logger.Printf("run %s: daily goal: user %d not found, skipping", runID, prefs.UserID)
			continue
		}

		sent := s.notifier.SendDailyGoalReminder(
			ctx,
			user.Email,
			user.DisplayName(),
			DefaultStepsGoal,
			DefaultWaterGoal,
		)

		s.dispatchAudit(user.ID, sendAction(sent), "daily_goal", prefs.ID, map[string]any{
			"run_id": runID,
		})

		if sent {
			s.logger.Printf("run %s: sent daily goal reminder to %s", runID, user.Email)
		} else {
			s.logger.Printf("run %s: daily goal reminder to %s was not delivered", runID, user.Email)
		}
	}

	return nil
}
