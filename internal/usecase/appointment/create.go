package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/baymax-health/internal/audit"
	domain "github.com/BruksfildServices01/baymax-health/internal/domain/appointment"
	"github.com/BruksfildServices01/baymax-health/internal/httperr"
	"github.com/BruksfildServices01/baymax-health/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID uint

	// DoctorID, when set, fills the doctor name and a missing specialty
	// from the directory.
	DoctorID   *uint
	DoctorName string
	Specialty  string

	// RFC3339, or "2006-01-02 15:04" in the service location
	AppointmentDate string
	Notes           string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
	now   func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	doctor := strings.TrimSpace(in.DoctorName)
	specialty := strings.TrimSpace(in.Specialty)

	if in.DoctorID != nil {
		d, err := uc.repo.GetDoctor(ctx, *in.DoctorID)
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, httperr.ErrBusiness("doctor_not_found")
		}
		doctor = d.Name
		if specialty == "" {
			specialty = d.Specialty
		}
	}

	if doctor == "" {
		return nil, httperr.ErrBusiness("doctor_name_required")
	}

	at, err := uc.parseDate(in.AppointmentDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_appointment_date")
	}

	if !at.After(uc.now()) {
		return nil, httperr.ErrBusiness("appointment_in_past")
	}

	// status is fixed here, markers start unset
	ap := &models.Appointment{
		UserID:          in.UserID,
		DoctorID:        in.DoctorID,
		DoctorName:      doctor,
		Specialty:       specialty,
		AppointmentDate: at.UTC(),
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.UserID,
			Action:   "appointment_created",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}

func (uc *CreateAppointment) parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02 15:04", s, uc.loc)
}
