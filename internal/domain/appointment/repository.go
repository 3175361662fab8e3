package appointment

import (
	"context"

	"github.com/BruksfildServices01/baymax-health/internal/models"
)

type Repository interface {
	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// GetAppointment returns (nil, nil) when the appointment does not exist.
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	// ListAppointments returns every appointment when userID is nil.
	ListAppointments(
		ctx context.Context,
		userID *uint,
	) ([]models.Appointment, error)

	// UpdateStatus writes the status column only, the reminder markers
	// belong to the scheduler.
	UpdateStatus(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Doctor --------

	// GetDoctor returns (nil, nil) when the doctor does not exist.
	GetDoctor(
		ctx context.Context,
		doctorID uint,
	) (*models.Doctor, error)

	// -------- Notification --------
	CreateNotification(
		ctx context.Context,
		n *models.Notification,
	) error
}
