package appointment

import (
	"context"

	"github.com/BruksfildServices01/baymax-health/internal/audit"
	domain "github.com/BruksfildServices01/baymax-health/internal/domain/appointment"
	"github.com/BruksfildServices01/baymax-health/internal/httperr"
	"github.com/BruksfildServices01/baymax-health/internal/models"
)

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute moves the appointment to status and notifies its owner when the
// change is a review decision.
func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	actorID uint,
	appointmentID uint,
	status string,
) (*models.Appointment, error) {

	next, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	previous := ap.Status
	if err := domain.ChangeStatus(ap, next); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateStatus(ctx, ap); err != nil {
		return nil, err
	}

	if n := domain.StatusNotification(ap); n != nil {
		if err := uc.repo.CreateNotification(ctx, n); err != nil {
			return nil, err
		}
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &actorID,
			Action:   "appointment_status_changed",
			Entity:   "appointment",
			EntityID: &ap.ID,
			Metadata: map[string]string{
				"from": previous,
				"to":   ap.Status,
			},
		})
	}

	return ap, nil
}
