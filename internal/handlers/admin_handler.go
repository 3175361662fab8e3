package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/baymax-health/internal/httperr"
	"github.com/BruksfildServices01/baymax-health/internal/httpresp"
	"github.com/BruksfildServices01/baymax-health/internal/models"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	counts := map[string]any{
		"users":        &models.User{},
		"appointments": &models.Appointment{},
		"medications":  &models.Medication{},
	}

	out := gin.H{}
	for name, model := range counts {
		var n int64
		if err := h.db.Model(model).Count(&n).Error; err != nil {
			httperr.Internal(c, "stats_failed", "Could not compute stats.")
			return
		}
		out[name] = n
	}

	var pending int64
	if err := h.db.Model(&models.Appointment{}).Where("status = ?", "pending").Count(&pending).Error; err != nil {
		httperr.Internal(c, "stats_failed", "Could not compute stats.")
		return
	}
	out["pending_appointments"] = pending

	httpresp.OK(c, out)
}

// Users lists accounts; password hashes never leave the model.
func (h *AdminHandler) Users(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Could not list users.")
		return
	}
	httpresp.List(c, users)
}
