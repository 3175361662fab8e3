package appointment

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/BruksfildServices01/baymax-health/internal/audit"
	domain "github.com/BruksfildServices01/baymax-health/internal/domain/appointment"
	"github.com/BruksfildServices01/baymax-health/internal/models"
)

var _ domain.Repository = (*MockAppointmentRepository)(nil)

type MockAppointmentRepository struct {
	CreateAppointmentFunc  func(ctx context.Context, ap *models.Appointment) error
	GetAppointmentFunc     func(ctx context.Context, id uint) (*models.Appointment, error)
	ListAppointmentsFunc   func(ctx context.Context, userID *uint) ([]models.Appointment, error)
	UpdateStatusFunc       func(ctx context.Context, ap *models.Appointment) error
	CreateNotificationFunc func(ctx context.Context, n *models.Notification) error
	GetDoctorFunc          func(ctx context.Context, id uint) (*models.Doctor, error)

	CreateAppointmentCallCount  int32
	UpdateStatusCallCount       int32
	CreateNotificationCallCount int32
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	atomic.AddInt32(&m.CreateAppointmentCallCount, 1)
	if m.CreateAppointmentFunc != nil {
		return m.CreateAppointmentFunc(ctx, ap)
	}
	return nil
}

func (m *MockAppointmentRepository) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	if m.GetAppointmentFunc != nil {
		return m.GetAppointmentFunc(ctx, id)
	}
	return nil, errors.New("GetAppointmentFunc not implemented in mock")
}

func (m *MockAppointmentRepository) ListAppointments(ctx context.Context, userID *uint) ([]models.Appointment, error) {
	if m.ListAppointmentsFunc != nil {
		return m.ListAppointmentsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, ap *models.Appointment) error {
	atomic.AddInt32(&m.UpdateStatusCallCount, 1)
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, ap)
	}
	return nil
}

func (m *MockAppointmentRepository) GetDoctor(ctx context.Context, id uint) (*models.Doctor, error) {
	if m.GetDoctorFunc != nil {
		return m.GetDoctorFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) CreateNotification(ctx context.Context, n *models.Notification) error {
	atomic.AddInt32(&m.CreateNotificationCallCount, 1)
	if m.CreateNotificationFunc != nil {
		return m.CreateNotificationFunc(ctx, n)
	}
	return nil
}

// memorySink collects audit events written through a real dispatcher.
type memorySink struct {
	actions []string
}

func (s *memorySink) Write(ev audit.Event) error {
	s.actions = append(s.actions, ev.Action)
	return nil
}
