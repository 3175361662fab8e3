package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/baymax-health/internal/audit"
	"github.com/BruksfildServices01/baymax-health/internal/httperr"
	"github.com/BruksfildServices01/baymax-health/internal/models"
)

var fixedNow = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func newCreate(repo *MockAppointmentRepository, d *audit.Dispatcher) *CreateAppointment {
	uc := NewCreateAppointment(repo, d, time.FixedZone("IST", 5*3600+30*60))
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestCreateAppointment_Success(t *testing.T) {
	var saved *models.Appointment
	repo := &MockAppointmentRepository{
		CreateAppointmentFunc: func(_ context.Context, ap *models.Appointment) error {
			ap.ID = 12
			saved = ap
			return nil
		},
	}
	sink := &memorySink{}
	d := audit.NewDispatcher(sink)

	ap, err := newCreate(repo, d).Execute(context.Background(), CreateAppointmentInput{
		UserID:          4,
		DoctorName:      "  Dr. Rao ",
		Specialty:       "Cardiology",
		AppointmentDate: "2026-03-10T09:30:00+05:30",
	})
	require.NoError(t, err)
	d.Close()

	assert.Same(t, saved, ap)
	assert.Equal(t, "Dr. Rao", ap.DoctorName)
	assert.Equal(t, "pending", ap.Status)
	assert.False(t, ap.ReminderSent24h)
	assert.False(t, ap.ReminderSent1h)
	assert.Equal(t, time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC), ap.AppointmentDate)
	assert.Equal(t, []string{"appointment_created"}, sink.actions)
}

func TestCreateAppointment_LocalDateFormat(t *testing.T) {
	repo := &MockAppointmentRepository{}

	ap, err := newCreate(repo, nil).Execute(context.Background(), CreateAppointmentInput{
		UserID:          4,
		DoctorName:      "Grey",
		AppointmentDate: "2026-03-10 09:30",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC), ap.AppointmentDate)
}

func TestCreateAppointment_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   CreateAppointmentInput
		code string
	}{
		{"missing doctor", CreateAppointmentInput{AppointmentDate: "2026-03-10T09:30:00Z"}, "doctor_name_required"},
		{"bad date", CreateAppointmentInput{DoctorName: "Grey", AppointmentDate: "next tuesday"}, "invalid_appointment_date"},
		{"past date", CreateAppointmentInput{DoctorName: "Grey", AppointmentDate: "2026-03-01T09:30:00Z"}, "appointment_in_past"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockAppointmentRepository{}
			_, err := newCreate(repo, nil).Execute(context.Background(), tt.in)
			assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
			assert.Zero(t, repo.CreateAppointmentCallCount)
		})
	}
}

func TestCreateAppointment_FromDirectory(t *testing.T) {
	repo := &MockAppointmentRepository{
		GetDoctorFunc: func(_ context.Context, id uint) (*models.Doctor, error) {
			if id != 3 {
				return nil, nil
			}
			return &models.Doctor{ID: 3, Name: "Dr. Silva", Specialty: "Cardiology"}, nil
		},
	}
	docID := uint(3)

	ap, err := newCreate(repo, nil).Execute(context.Background(), CreateAppointmentInput{
		UserID:          4,
		DoctorID:        &docID,
		AppointmentDate: "2026-03-10 09:30",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Silva", ap.DoctorName)
	assert.Equal(t, "Cardiology", ap.Specialty)
	require.NotNil(t, ap.DoctorID)
	assert.Equal(t, docID, *ap.DoctorID)

	unknown := uint(8)
	_, err = newCreate(repo, nil).Execute(context.Background(), CreateAppointmentInput{
		UserID:          4,
		DoctorID:        &unknown,
		DoctorName:      "Grey",
		AppointmentDate: "2026-03-10 09:30",
	})
	assert.True(t, httperr.IsBusiness(err, "doctor_not_found"), "got %v", err)
	assert.EqualValues(t, 1, repo.CreateAppointmentCallCount)
}

func TestCreateAppointment_DoctorLookupError(t *testing.T) {
	boom := errors.New("db down")
	repo := &MockAppointmentRepository{
		GetDoctorFunc: func(context.Context, uint) (*models.Doctor, error) { return nil, boom },
	}
	docID := uint(3)

	_, err := newCreate(repo, nil).Execute(context.Background(), CreateAppointmentInput{
		UserID:          4,
		DoctorID:        &docID,
		AppointmentDate: "2026-03-10 09:30",
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, repo.CreateAppointmentCallCount)
}

func TestUpdateAppointmentStatus_ApprovedNotifiesOwner(t *testing.T) {
	var notice *models.Notification
	repo := &MockAppointmentRepository{
		GetAppointmentFunc: func(_ context.Context, id uint) (*models.Appointment, error) {
			return &models.Appointment{ID: id, UserID: 4, DoctorName: "Grey", Status: "pending"}, nil
		},
		CreateNotificationFunc: func(_ context.Context, n *models.Notification) error {
			notice = n
			return nil
		},
	}
	sink := &memorySink{}
	d := audit.NewDispatcher(sink)

	ap, err := NewUpdateAppointmentStatus(repo, d).Execute(context.Background(), 1, 9, "approved")
	require.NoError(t, err)
	d.Close()

	assert.Equal(t, "approved", ap.Status)
	assert.EqualValues(t, 1, repo.UpdateStatusCallCount)
	require.NotNil(t, notice)
	assert.Equal(t, uint(4), notice.UserID)
	assert.Equal(t, "Appointment Approved", notice.Title)
	assert.Equal(t, []string{"appointment_status_changed"}, sink.actions)
}

func TestUpdateAppointmentStatus_CancelDoesNotNotify(t *testing.T) {
	repo := &MockAppointmentRepository{
		GetAppointmentFunc: func(_ context.Context, id uint) (*models.Appointment, error) {
			return &models.Appointment{ID: id, Status: "scheduled"}, nil
		},
	}

	ap, err := NewUpdateAppointmentStatus(repo, nil).Execute(context.Background(), 1, 9, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", ap.Status)
	assert.Zero(t, repo.CreateNotificationCallCount)
}

func TestUpdateAppointmentStatus_Errors(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		repo := &MockAppointmentRepository{}
		_, err := NewUpdateAppointmentStatus(repo, nil).Execute(context.Background(), 1, 9, "done")
		assert.True(t, httperr.IsBusiness(err, "invalid_status"))
	})

	t.Run("not found", func(t *testing.T) {
		repo := &MockAppointmentRepository{
			GetAppointmentFunc: func(context.Context, uint) (*models.Appointment, error) { return nil, nil },
		}
		_, err := NewUpdateAppointmentStatus(repo, nil).Execute(context.Background(), 1, 9, "approved")
		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	})

	t.Run("terminal status", func(t *testing.T) {
		repo := &MockAppointmentRepository{
			GetAppointmentFunc: func(_ context.Context, id uint) (*models.Appointment, error) {
				return &models.Appointment{ID: id, Status: "rejected"}, nil
			},
		}
		_, err := NewUpdateAppointmentStatus(repo, nil).Execute(context.Background(), 1, 9, "approved")
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		assert.Zero(t, repo.UpdateStatusCallCount)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := &MockAppointmentRepository{
			GetAppointmentFunc: func(_ context.Context, id uint) (*models.Appointment, error) {
				return &models.Appointment{ID: id, Status: "pending"}, nil
			},
			UpdateStatusFunc: func(context.Context, *models.Appointment) error { return errors.New("db down") },
		}
		_, err := NewUpdateAppointmentStatus(repo, nil).Execute(context.Background(), 1, 9, "rejected")
		assert.EqualError(t, err, "db down")
		assert.Zero(t, repo.CreateNotificationCallCount)
	})
}

func TestListAppointments(t *testing.T) {
	var gotFilter *uint
	repo := &MockAppointmentRepository{
		ListAppointmentsFunc: func(_ context.Context, userID *uint) ([]models.Appointment, error) {
			gotFilter = userID
			return []models.Appointment{{ID: 1, UserID: 4, DoctorName: "Grey", Status: "pending", ReminderSent24h: true}}, nil
		},
	}
	uc := NewListAppointments(repo)

	out, err := uc.Execute(context.Background(), 4, false)
	require.NoError(t, err)
	require.NotNil(t, gotFilter)
	assert.Equal(t, uint(4), *gotFilter)
	require.Len(t, out, 1)
	assert.Equal(t, "Grey", out[0].DoctorName)
	assert.True(t, out[0].ReminderSent24h)

	_, err = uc.Execute(context.Background(), 4, true)
	require.NoError(t, err)
	assert.Nil(t, gotFilter)
}
