package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/baymax-health/internal/domain/reminder"
	"github.com/BruksfildServices01/baymax-health/internal/httperr"
	"github.com/BruksfildServices01/baymax-health/internal/httpresp"
	"github.com/BruksfildServices01/baymax-health/internal/models"
	"github.com/BruksfildServices01/baymax-health/internal/timezone"
)

type TestEmailSender interface {
	SendTestEmail(ctx context.Context, email, name string) bool
}

type EmailHandler struct {
	db     *gorm.DB
	cache  reminder.PreferenceCache
	sender TestEmailSender
}

// NewEmailHandler accepts a nil cache when redis is not configured.
func NewEmailHandler(db *gorm.DB, cache reminder.PreferenceCache, sender TestEmailSender) *EmailHandler {
	return &EmailHandler{db: db, cache: cache, sender: sender}
}

// Omitted categories fall back to their enabled defaults, like a fresh
// record would.
type UpdatePreferencesRequest struct {
	NotificationsEnabled *bool                               `json:"notifications_enabled"`
	AppointmentReminders *models.AppointmentReminderSettings `json:"appointment_reminders"`
	MedicationReminders  *models.MedicationReminderSettings  `json:"medication_reminders"`
	DailyGoalReminders   *models.DailyGoalReminderSettings   `json:"daily_goal_reminders"`
}

// ======================================================
// GET
// ======================================================

func (h *EmailHandler) GetPreferences(c *gin.Context) {
	userID := currentUserID(c)

	prefs, err := h.find(userID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_preferences", "Could not load preferences.")
		return
	}

	if prefs == nil {
		defaults := models.DefaultEmailPreferences(userID)
		var user models.User
		if err := h.db.First(&user, userID).Error; err == nil {
			defaults.Email = user.Email
		}
		httpresp.OK(c, defaults)
		return
	}

	httpresp.OK(c, prefs)
}

// ======================================================
// UPDATE
// ======================================================

func (h *EmailHandler) UpdatePreferences(c *gin.Context) {
	userID := currentUserID(c)

	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	next := models.DefaultEmailPreferences(userID)
	next.Email = user.Email
	if req.NotificationsEnabled != nil {
		next.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.AppointmentReminders != nil {
		for _, hrs := range req.AppointmentReminders.AdvanceHours {
			if hrs <= 0 {
				httperr.BadRequest(c, "invalid_advance_hours", "Advance hours must be positive.")
				return
			}
		}
		next.AppointmentReminders = *req.AppointmentReminders
		if next.AppointmentReminders.Enabled == nil {
			next.AppointmentReminders.Enabled = models.BoolPtr(true)
		}
	}
	if req.MedicationReminders != nil {
		next.MedicationReminders = *req.MedicationReminders
		if next.MedicationReminders.Enabled == nil {
			next.MedicationReminders.Enabled = models.BoolPtr(true)
		}
	}
	if req.DailyGoalReminders != nil {
		if t := req.DailyGoalReminders.Time; t != "" {
			if _, _, err := timezone.ParseClock(t); err != nil {
				httperr.BadRequest(c, "invalid_time", "Daily goal time must be HH:MM.")
				return
			}
		}
		next.DailyGoalReminders = *req.DailyGoalReminders
		// stored explicitly: the daily job selects subscribers by enabled = true
		if next.DailyGoalReminders.Enabled == nil {
			next.DailyGoalReminders.Enabled = models.BoolPtr(true)
		}
	}

	saved, err := h.upsert(c.Request.Context(), next)
	if err != nil {
		httperr.Internal(c, "failed_to_save_preferences", "Could not save preferences.")
		return
	}

	c.JSON(200, gin.H{
		"success":     true,
		"message":     "Preferences updated",
		"preferences": saved,
	})
}

// ======================================================
// UNSUBSCRIBE
// ======================================================

func (h *EmailHandler) Unsubscribe(c *gin.Context) {
	userID := currentUserID(c)

	prefs, err := h.find(userID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_preferences", "Could not load preferences.")
		return
	}

	next := models.EmailPreferences{UserID: userID}
	if prefs != nil {
		next = *prefs
	}
	next.NotificationsEnabled = false
	next.AppointmentReminders.Enabled = models.BoolPtr(false)
	next.MedicationReminders.Enabled = models.BoolPtr(false)
	next.DailyGoalReminders.Enabled = models.BoolPtr(false)

	if _, err := h.upsert(c.Request.Context(), next); err != nil {
		httperr.Internal(c, "failed_to_save_preferences", "Could not save preferences.")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Unsubscribed from all email notifications",
	})
}

// ======================================================
// TEST EMAIL
// ======================================================

func (h *EmailHandler) SendTest(c *gin.Context) {
	var user models.User
	if err := h.db.First(&user, currentUserID(c)).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	if user.Email == "" {
		httperr.BadRequest(c, "missing_email", "User has no email address.")
		return
	}

	if !h.sender.SendTestEmail(c.Request.Context(), user.Email, user.DisplayName()) {
		httperr.Internal(c, "email_failed", "Failed to send test email.")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Test email sent to " + user.Email,
	})
}

// ======================================================
// HELPERS
// ======================================================

func (h *EmailHandler) find(userID uint) (*models.EmailPreferences, error) {
	var prefs models.EmailPreferences
	err := h.db.Where("user_id = ?", userID).First(&prefs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

// upsert writes prefs over the user's existing record, if any, and drops
// the cached copy so the scheduler sees the change on its next tick.
func (h *EmailHandler) upsert(ctx context.Context, prefs models.EmailPreferences) (*models.EmailPreferences, error) {
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.EmailPreferences
		err := tx.Where("user_id = ?", prefs.UserID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			prefs.ID = 0
			return tx.Create(&prefs).Error
		case err != nil:
			return err
		}

		prefs.ID = existing.ID
		prefs.CreatedAt = existing.CreatedAt
		return tx.Save(&prefs).Error
	})
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		if err := h.cache.Invalidate(ctx, prefs.UserID); err != nil {
			log.Printf("preferences: invalidate cache for user %d: %v", prefs.UserID, err)
		}
	}
	return &prefs, nil
}
