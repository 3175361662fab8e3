package appointment

import (
	"fmt"

	"github.com/BruksfildServices01/baymax-health/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func ChangeStatus(ap *models.Appointment, next Status) error {
	if err := CanTransition(Status(ap.Status), next); err != nil {
		return err
	}

	ap.Status = string(next)
	return nil
}

// StatusNotification builds the in-app notice for a review decision.
// Only approved and rejected produce one.
func StatusNotification(ap *models.Appointment) *models.Notification {
	var title, kind string
	switch Status(ap.Status) {
	case StatusApproved:
		title, kind = "Appointment Approved", "success"
	case StatusRejected:
		title, kind = "Appointment Rejected", "error"
	default:
		return nil
	}

	return &models.Notification{
		UserID:  ap.UserID,
		Title:   title,
		Message: fmt.Sprintf("Your appointment with %s has been %s.", ap.DoctorName, ap.Status),
		Type:    kind,
	}
}
