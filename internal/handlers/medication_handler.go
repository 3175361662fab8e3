package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/baymax-health/internal/httperr"
	"github.com/BruksfildServices01/baymax-health/internal/httpresp"
	"github.com/BruksfildServices01/baymax-health/internal/models"
	"github.com/BruksfildServices01/baymax-health/internal/validators"
)

type MedicationHandler struct {
	db *gorm.DB
}

func NewMedicationHandler(db *gorm.DB) *MedicationHandler {
	return &MedicationHandler{db: db}
}

type CreateMedicationRequest struct {
	Name      string   `json:"name" binding:"required"`
	Dosage    string   `json:"dosage"`
	Frequency string   `json:"frequency"`
	Schedule  []string `json:"schedule"`
}

type UpdateMedicationRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *MedicationHandler) List(c *gin.Context) {
	var meds []models.Medication
	if err := h.db.
		Where("user_id = ?", currentUserID(c)).
		Order("created_at DESC").
		Find(&meds).Error; err != nil {
		httperr.Internal(c, "failed_to_list_medications", "Could not list medications.")
		return
	}
	httpresp.List(c, meds)
}

func (h *MedicationHandler) Create(c *gin.Context) {
	var req CreateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}

	schedule, err := validators.NormalizeSlots(req.Schedule)
	if err != nil {
		httperr.BadRequest(c, "invalid_schedule", "Schedule times must be HH:MM.")
		return
	}

	med := models.Medication{
		UserID:    currentUserID(c),
		Name:      strings.TrimSpace(req.Name),
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		Active:    true,
		Schedule:  schedule,
	}

	if err := h.db.Create(&med).Error; err != nil {
		httperr.Internal(c, "failed_to_create_medication", "Could not save medication.")
		return
	}

	httpresp.Created(c, med)
}

func (h *MedicationHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}

	var med models.Medication
	if err := h.db.Where("id = ? AND user_id = ?", id, currentUserID(c)).First(&med).Error; err != nil {
		httperr.NotFound(c, "medication_not_found", "Medication not found.")
		return
	}

	if err := h.db.Model(&med).Update("active", *req.Active).Error; err != nil {
		httperr.Internal(c, "failed_to_update_medication", "Could not update medication.")
		return
	}
	med.Active = *req.Active

	httpresp.OK(c, med)
}

func (h *MedicationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	res := h.db.Where("id = ? AND user_id = ?", id, currentUserID(c)).Delete(&models.Medication{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_medication", "Could not delete medication.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "medication_not_found", "Medication not found.")
		return
	}

	httpresp.Message(c, "Deleted")
}
