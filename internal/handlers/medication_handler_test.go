package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/baymax-health/internal/models"
)

func medicationRouter(gdb *gorm.DB, u *models.User) *gin.Engine {
	h := NewMedicationHandler(gdb)
	r := gin.New()
	r.Use(asUser(u))
	r.GET("/medications", h.List)
	r.POST("/medications", h.Create)
	r.PUT("/medications/:id", h.Update)
	r.DELETE("/medications/:id", h.Delete)
	return r
}

func TestMedications_CreateNormalizesSchedule(t *testing.T) {
	gdb := newTestDB(t)
	ana := seedUser(t, gdb, "ana", models.RoleUser)
	r := medicationRouter(gdb, ana)

	w := doJSON(r, http.MethodPost, "/medications", gin.H{
		"name": " Metformin ", "dosage": "500mg", "schedule": []string{"8:00", "20:30"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	med := decode[models.Medication](t, w)
	assert.Equal(t, "Metformin", med.Name)
	assert.True(t, med.Active)
	assert.Equal(t, []string{"08:00", "20:30"}, med.Schedule)

	w = doJSON(r, http.MethodPost, "/medications", gin.H{"name": "Bad", "schedule": []string{"8pm"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_schedule", decode[errorBody](t, w).Code)

	w = doJSON(r, http.MethodGet, "/medications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[listBody[models.Medication]](t, w).Total)
}

func TestMedications_UpdateAndDeleteAreOwnerOnly(t *testing.T) {
	gdb := newTestDB(t)
	ana := seedUser(t, gdb, "ana", models.RoleUser)
	bo := seedUser(t, gdb, "bo", models.RoleUser)

	med := models.Medication{UserID: ana.ID, Name: "Metformin", Active: true, Schedule: []string{"08:00"}}
	require.NoError(t, gdb.Create(&med).Error)
	path := "/medications/" + itoa(med.ID)

	w := doJSON(medicationRouter(gdb, bo), http.MethodPut, path, gin.H{"active": false})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(medicationRouter(gdb, bo), http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "medication_not_found", decode[errorBody](t, w).Code)

	r := medicationRouter(gdb, ana)

	w = doJSON(r, http.MethodPut, path, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code, "active is required")

	w = doJSON(r, http.MethodPut, path, gin.H{"active": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[models.Medication](t, w).Active)

	var stored models.Medication
	require.NoError(t, gdb.First(&stored, med.ID).Error)
	assert.False(t, stored.Active)

	w = doJSON(r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
