package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/baymax-health/internal/httperr"
	"github.com/BruksfildServices01/baymax-health/internal/httpresp"
	"github.com/BruksfildServices01/baymax-health/internal/models"
)

type HealthLogHandler struct {
	db *gorm.DB
}

func NewHealthLogHandler(db *gorm.DB) *HealthLogHandler {
	return &HealthLogHandler{db: db}
}

// Nil fields are left as stored, so a client can save only the
// medications it tracked for the day.
type SaveHealthLogRequest struct {
	LogDate     string    `json:"log_date" binding:"required"`
	Symptoms    *[]string `json:"symptoms"`
	Medications *[]string `json:"medications"`
	Mood        *string   `json:"mood" binding:"omitempty,max=30"`
	SleepHours  *float64  `json:"sleep_hours" binding:"omitempty,min=0,max=24"`
	EnergyLevel *int      `json:"energy_level" binding:"omitempty,min=0,max=10"`
	Notes       *string   `json:"notes"`
}

// ======================================================
// LIST
// ======================================================

// List returns every log of the caller, newest day first. With ?date= it
// returns that day's log, or an empty object when there is none.
func (h *HealthLogHandler) List(c *gin.Context) {
	userID := currentUserID(c)

	if date := c.Query("date"); date != "" {
		if !validLogDate(date) {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}

		entry, err := h.find(userID, date)
		if err != nil {
			httperr.Internal(c, "failed_to_load_health_log", "Could not load health log.")
			return
		}
		if entry == nil {
			httpresp.OK(c, gin.H{})
			return
		}
		httpresp.OK(c, entry)
		return
	}

	var logs []models.HealthLog
	if err := h.db.
		Where("user_id = ?", userID).
		Order("log_date DESC").
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_health_logs", "Could not list health logs.")
		return
	}
	httpresp.List(c, logs)
}

// ======================================================
// SAVE
// ======================================================

// Save creates the day's log or merges the sent fields into it.
func (h *HealthLogHandler) Save(c *gin.Context) {
	var req SaveHealthLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}
	if !validLogDate(req.LogDate) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	userID := currentUserID(c)

	existing, err := h.find(userID, req.LogDate)
	if err != nil {
		httperr.Internal(c, "failed_to_load_health_log", "Could not load health log.")
		return
	}

	status := http.StatusOK
	entry := existing
	if entry == nil {
		status = http.StatusCreated
		entry = &models.HealthLog{UserID: userID, LogDate: req.LogDate}
	}
	req.applyTo(entry)

	if err := h.db.Save(entry).Error; err != nil {
		httperr.Internal(c, "failed_to_save_health_log", "Could not save health log.")
		return
	}

	c.JSON(status, entry)
}

// ======================================================
// DELETE
// ======================================================

func (h *HealthLogHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	res := h.db.Where("id = ? AND user_id = ?", id, currentUserID(c)).Delete(&models.HealthLog{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_health_log", "Could not delete health log.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "health_log_not_found", "Health log not found.")
		return
	}

	httpresp.Message(c, "Deleted")
}

// ======================================================
// HELPERS
// ======================================================

func (r SaveHealthLogRequest) applyTo(l *models.HealthLog) {
	if r.Symptoms != nil {
		l.Symptoms = *r.Symptoms
	}
	if r.Medications != nil {
		l.Medications = *r.Medications
	}
	if r.Mood != nil {
		l.Mood = *r.Mood
	}
	if r.SleepHours != nil {
		l.SleepHours = r.SleepHours
	}
	if r.EnergyLevel != nil {
		l.EnergyLevel = r.EnergyLevel
	}
	if r.Notes != nil {
		l.Notes = *r.Notes
	}
}

func (h *HealthLogHandler) find(userID uint, date string) (*models.HealthLog, error) {
	var entry models.HealthLog
	err := h.db.Where("user_id = ? AND log_date = ?", userID, date).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func validLogDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}
