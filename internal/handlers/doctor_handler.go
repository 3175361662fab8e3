package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/baymax-health/internal/httperr"
	"github.com/BruksfildServices01/baymax-health/internal/httpresp"
	"github.com/BruksfildServices01/baymax-health/internal/models"
)

type DoctorHandler struct {
	db *gorm.DB
}

func NewDoctorHandler(db *gorm.DB) *DoctorHandler {
	return &DoctorHandler{db: db}
}

type CreateDoctorRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Specialty    string `json:"specialty" binding:"required,max=100"`
	Availability string `json:"availability" binding:"max=100"`
	ImageURL     string `json:"image_url" binding:"omitempty,url,max=255"`
}

// List returns the directory, optionally narrowed with ?specialty=.
func (h *DoctorHandler) List(c *gin.Context) {
	q := h.db.Order("name ASC").Order("id ASC")
	if sp := strings.TrimSpace(c.Query("specialty")); sp != "" {
		q = q.Where("specialty = ?", sp)
	}

	var doctors []models.Doctor
	if err := q.Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Could not list doctors.")
		return
	}
	httpresp.List(c, doctors)
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}

	doctor := models.Doctor{
		Name:         strings.TrimSpace(req.Name),
		Specialty:    strings.TrimSpace(req.Specialty),
		Availability: strings.TrimSpace(req.Availability),
		ImageURL:     req.ImageURL,
	}
	if doctor.Availability == "" {
		doctor.Availability = models.DefaultDoctorAvailability
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_create_doctor", "Could not save doctor.")
		return
	}

	httpresp.Created(c, doctor)
}

func (h *DoctorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	res := h.db.Delete(&models.Doctor{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_doctor", "Could not delete doctor.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	httpresp.Message(c, "Doctor deleted")
}
