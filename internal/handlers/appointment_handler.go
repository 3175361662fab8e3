package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/baymax-health/internal/httperr"
	"github.com/BruksfildServices01/baymax-health/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/baymax-health/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	updateStatusUC *ucAppointment.UpdateAppointmentStatus
	listUC         *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateStatusUC *ucAppointment.UpdateAppointmentStatus,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		updateStatusUC: updateStatusUC,
		listUC:         listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	DoctorID        *uint  `json:"doctor_id"`
	DoctorName      string `json:"doctor_name"`
	Specialty       string `json:"specialty"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	Notes           string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

// List returns the caller's appointments; admins see every user's.
func (h *AppointmentHandler) List(c *gin.Context) {
	out, err := h.listUC.Execute(c.Request.Context(), currentUserID(c), isAdmin(c))
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}
	httpresp.List(c, out)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID:          currentUserID(c),
		DoctorID:        req.DoctorID,
		DoctorName:      req.DoctorName,
		Specialty:       req.Specialty,
		AppointmentDate: req.AppointmentDate,
		Notes:           req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_appointment")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// STATUS (admin)
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}

	ap, err := h.updateStatusUC.Execute(c.Request.Context(), currentUserID(c), id, req.Status)
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_status")
		return
	}

	httpresp.OK(c, ap)
}
