package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/baymax-health/internal/httperr"
	"github.com/BruksfildServices01/baymax-health/internal/httpresp"
	"github.com/BruksfildServices01/baymax-health/internal/models"
)

const (
	defaultReadingsLimit = 50
	maxReadingsLimit     = 500
)

type SensorHandler struct {
	db *gorm.DB
}

func NewSensorHandler(db *gorm.DB) *SensorHandler {
	return &SensorHandler{db: db}
}

type CreateReadingRequest struct {
	ReadingType string   `json:"reading_type" binding:"required"`
	Value       *float64 `json:"value" binding:"required"`
	Unit        string   `json:"unit" binding:"required"`
	Source      string   `json:"source" binding:"required"`
	DeviceName  string   `json:"device_name"`
}

func (h *SensorHandler) List(c *gin.Context) {
	limit := positiveQuery(c, "limit", defaultReadingsLimit, maxReadingsLimit)

	q := h.db.Where("user_id = ?", currentUserID(c))
	if t := c.Query("type"); t != "" {
		q = q.Where("reading_type = ?", t)
	}

	var readings []models.SensorReading
	if err := q.
		Order("recorded_at DESC").
		Limit(limit).
		Find(&readings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_readings", "Could not list readings.")
		return
	}
	httpresp.List(c, readings)
}

func (h *SensorHandler) Create(c *gin.Context) {
	var req CreateReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}

	reading := models.SensorReading{
		UserID:      currentUserID(c),
		ReadingType: req.ReadingType,
		Value:       *req.Value,
		Unit:        req.Unit,
		Source:      req.Source,
		DeviceName:  req.DeviceName,
		RecordedAt:  time.Now().UTC(),
	}

	if err := h.db.Create(&reading).Error; err != nil {
		httperr.Internal(c, "failed_to_save_reading", "Could not save reading.")
		return
	}

	httpresp.Created(c, reading)
}
