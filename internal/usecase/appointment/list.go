package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/baymax-health/internal/domain/appointment"
	"github.com/BruksfildServices01/baymax-health/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

// Execute lists the user's appointments, or everyone's when all is set.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	userID uint,
	all bool,
) ([]dto.AppointmentListDTO, error) {

	var filter *uint
	if !all {
		filter = &userID
	}

	appointments, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:              ap.ID,
			UserID:          ap.UserID,
			DoctorID:        ap.DoctorID,
			DoctorName:      ap.DoctorName,
			Specialty:       ap.Specialty,
			AppointmentDate: ap.AppointmentDate,
			Status:          ap.Status,
			Notes:           ap.Notes,
			ReminderSent24h: ap.ReminderSent24h,
			ReminderSent1h:  ap.ReminderSent1h,
		})
	}

	return out, nil
}
