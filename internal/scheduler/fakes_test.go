package scheduler

import (
	"context"
	"errors"
	"io"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/BruksfildServices01/baymax-health/internal/domain/reminder"
	"github.com/BruksfildServices01/baymax-health/internal/models"
)

var _ reminder.Repository = (*fakeRepository)(nil)

// fakeRepository keeps records in memory and applies the same filters the
// gorm repository does.
type fakeRepository struct {
	mu sync.Mutex

	users        map[uint]*models.User
	appointments []*models.Appointment
	medications  []*models.Medication
	prefs        map[uint]*models.EmailPreferences

	ListDueAppointmentsErr error
	MarkErr                error

	// BeforeListMedications runs at the start of ListActiveMedications,
	// outside the lock.
	BeforeListMedications func()

	MarkCallCount   int
	RecordCallCount int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		users: map[uint]*models.User{},
		prefs: map[uint]*models.EmailPreferences{},
	}
}

func (r *fakeRepository) addUser(id uint, email, name string) {
	r.users[id] = &models.User{ID: id, Email: email, Name: name}
}

func (r *fakeRepository) FindUser(_ context.Context, userID uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeRepository) FindPreferences(_ context.Context, userID uint) (*models.EmailPreferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.prefs[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepository) ListDueAppointments(
	_ context.Context,
	from time.Time,
	to time.Time,
	marker reminder.Marker,
) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ListDueAppointmentsErr != nil {
		return nil, r.ListDueAppointmentsErr
	}

	var out []models.Appointment
	for _, a := range r.appointments {
		if a.AppointmentDate.Before(from) || a.AppointmentDate.After(to) {
			continue
		}
		if !slices.Contains(reminder.RemindableStatuses, a.Status) {
			continue
		}
		if markerValue(a, marker) {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeRepository) MarkAppointmentReminder(
	_ context.Context,
	appointmentID uint,
	marker reminder.Marker,
	at time.Time,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.MarkCallCount++
	if r.MarkErr != nil {
		return r.MarkErr
	}

	for _, a := range r.appointments {
		if a.ID != appointmentID {
			continue
		}
		switch marker {
		case reminder.Marker24h:
			a.ReminderSent24h = true
		case reminder.Marker1h:
			a.ReminderSent1h = true
		default:
			return errors.New("unknown marker")
		}
		t := at
		a.LastReminderAt = &t
	}
	return nil
}

func (r *fakeRepository) ListActiveMedications(_ context.Context) ([]models.Medication, error) {
	if r.BeforeListMedications != nil {
		r.BeforeListMedications()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Medication
	for _, m := range r.medications {
		if m.Active {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeRepository) RecordMedicationReminder(_ context.Context, medicationID uint, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.RecordCallCount++
	for _, m := range r.medications {
		if m.ID == medicationID {
			t := at
			m.LastReminderSent = &t
			m.ReminderCount++
		}
	}
	return nil
}

func (r *fakeRepository) ListDailyGoalSubscribers(_ context.Context) ([]models.EmailPreferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.EmailPreferences
	for _, p := range r.prefs {
		if p.DailyGoalReminders.Enabled != nil && *p.DailyGoalReminders.Enabled {
			out = append(out, *p)
		}
	}
	return out, nil
}

func markerValue(a *models.Appointment, m reminder.Marker) bool {
	if m == reminder.Marker24h {
		return a.ReminderSent24h
	}
	return a.ReminderSent1h
}

type appointmentCall struct {
	Email, Name, DoctorName, Specialty, Date, Time string
	HoursUntil                                     int
}

type medicationCall struct {
	Email, Name, MedicationName, Dosage, Time string
}

type dailyGoalCall struct {
	Email, Name          string
	StepsGoal, WaterGoal int
}

type fakeNotifier struct {
	mu sync.Mutex

	Appointments []appointmentCall
	Medications  []medicationCall
	DailyGoals   []dailyGoalCall

	// Fail makes every send report failure.
	Fail bool
}

func (n *fakeNotifier) SendAppointmentReminder(_ context.Context, email, name, doctorName, specialty, date, timeStr string, hoursUntil int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Appointments = append(n.Appointments, appointmentCall{email, name, doctorName, specialty, date, timeStr, hoursUntil})
	return !n.Fail
}

func (n *fakeNotifier) SendMedicationReminder(_ context.Context, email, name, medicationName, dosage, timeStr string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Medications = append(n.Medications, medicationCall{email, name, medicationName, dosage, timeStr})
	return !n.Fail
}

func (n *fakeNotifier) SendDailyGoalReminder(_ context.Context, email, name string, stepsGoal, waterGoal int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.DailyGoals = append(n.DailyGoals, dailyGoalCall{email, name, stepsGoal, waterGoal})
	return !n.Fail
}

func newTestScheduler(repo *fakeRepository, n *fakeNotifier, now time.Time, policy reminder.MarkPolicy) *Scheduler {
	return New(repo, reminder.NewPreferenceResolver(repo, nil), n, Options{
		Location: time.UTC,
		Policy:   policy,
		Logger:   log.New(io.Discard, "", 0),
		Now:      func() time.Time { return now },
	})
}
