package scheduler

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/BruksfildServices01/baymax-health/internal/audit"
	"github.com/BruksfildServices01/baymax-health/internal/domain/reminder"
	"github.com/BruksfildServices01/baymax-health/internal/timezone"
)

const (
	appointmentSpec = "0 * * * *"
	medicationSpec  = "*/15 * * * *"

	appointmentJob = "appointment_reminders"
	medicationJob  = "medication_reminders"
	dailyGoalJob   = "daily_goal_reminders"

	DefaultDailyGoalTime = "08:00"
	DefaultStepsGoal     = 10000
	DefaultWaterGoal     = 8
)

// Notifier is the slice of the email service the jobs need.
type Notifier interface {
	SendAppointmentReminder(ctx context.Context, email, name, doctorName, specialty, date, timeStr string, hoursUntil int) bool
	SendMedicationReminder(ctx context.Context, email, name, medicationName, dosage, timeStr string) bool
	SendDailyGoalReminder(ctx context.Context, email, name string, stepsGoal, waterGoal int) bool
}

// PreferenceChecker reports whether a user accepts a reminder category.
type PreferenceChecker interface {
	Enabled(ctx context.Context, userID uint, category reminder.Category) bool
}

type Options struct {
	Location      *time.Location
	Policy        reminder.MarkPolicy
	DailyGoalTime string
	Logger        *log.Logger
	Audit         *audit.Dispatcher
	Now           func() time.Time
}

// Scheduler owns the three reminder jobs. It is built once by the
// composition root and started and stopped explicitly.
type Scheduler struct {
	repo     reminder.Repository
	prefs    PreferenceChecker
	notifier Notifier
	audit    *audit.Dispatcher

	policy        reminder.MarkPolicy
	loc           *time.Location
	dailyGoalTime string
	logger        *log.Logger
	now           func() time.Time

	// cron specs by job name; the daily entry is derived from dailyGoalTime
	specs map[string]string

	mu      sync.Mutex
	cron    *cron.Cron
	entries map[string]cron.EntryID
	started bool
}

func New(
	repo reminder.Repository,
	prefs PreferenceChecker,
	notifier Notifier,
	opts Options,
) *Scheduler {

	if opts.Location == nil {
		opts.Location = timezone.Location(timezone.DefaultTimezone)
	}
	if opts.DailyGoalTime == "" {
		opts.DailyGoalTime = DefaultDailyGoalTime
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, "[reminders] ", log.LstdFlags)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Scheduler{
		repo:          repo,
		prefs:         prefs,
		notifier:      notifier,
		audit:         opts.Audit,
		policy:        opts.Policy,
		loc:           opts.Location,
		dailyGoalTime: opts.DailyGoalTime,
		logger:        opts.Logger,
		now:           opts.Now,
		specs: map[string]string{
			appointmentJob: appointmentSpec,
			medicationJob:  medicationSpec,
		},
	}
}

// Start registers the jobs and begins ticking. Calling Start on a running
// scheduler is a no-op.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	dailySpec, err := dailySpecFor(s.dailyGoalTime)
	if err != nil {
		return err
	}

	cronLog := cron.PrintfLogger(s.logger)
	c := cron.New(
		cron.WithLocation(s.loc),
		cron.WithLogger(cronLog),
		cron.WithChain(
			cron.Recover(cronLog),
			cron.SkipIfStillRunning(cronLog),
		),
	)

	jobs := []struct {
		name string
		spec string
		run  func(context.Context)
	}{
		{appointmentJob, s.specs[appointmentJob], s.CheckAppointmentReminders},
		{medicationJob, s.specs[medicationJob], s.CheckMedicationReminders},
		{dailyGoalJob, dailySpec, s.SendDailyGoalReminders},
	}

	entries := make(map[string]cron.EntryID, len(jobs))
	for _, j := range jobs {
		run := j.run
		id, err := c.AddFunc(j.spec, func() { run(context.Background()) })
		if err != nil {
			return fmt.Errorf("register %s: %w", j.name, err)
		}
		entries[j.name] = id
	}

	c.Start()
	s.cron = c
	s.entries = entries
	s.started = true

	s.logger.Printf("scheduler started (tz=%s, policy=%s, daily=%s)", s.loc, s.policy, s.dailyGoalTime)
	return nil
}

// Stop halts future ticks and waits for running ticks to finish, or for
// ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}
	done := s.cron.Stop()
	s.started = false
	s.mu.Unlock()

	select {
	case <-done.Done():
		s.logger.Println("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

func dailySpecFor(hm string) (string, error) {
	hour, minute, err := timezone.ParseClock(hm)
	if err != nil {
		return "", fmt.Errorf("invalid daily goal time %q: %w", hm, err)
	}
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}

func (s *Scheduler) dispatchAudit(userID uint, action, entity string, entityID uint, meta any) {
	if s.audit == nil {
		return
	}
	s.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   entity,
		EntityID: &entityID,
		Metadata: meta,
	})
}

func sendAction(sent bool) string {
	if sent {
		return "reminder_sent"
	}
	return "reminder_failed"
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
