package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/baymax-health/internal/httperr"
	"github.com/BruksfildServices01/baymax-health/internal/models"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List pages through audit entries, newest first. Filters: user_id,
// action, entity, from and to (YYYY-MM-DD, inclusive).
func (h *AuditLogsHandler) List(c *gin.Context) {
	page := positiveQuery(c, "page", 1, 0)
	limit := positiveQuery(c, "limit", defaultAuditLimit, maxAuditLimit)

	q := auditFilters(h.db.Model(&models.AuditLog{}), c)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Could not count logs.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "audit_list_failed", "Could not list logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}

func auditFilters(q *gorm.DB, c *gin.Context) *gorm.DB {
	if v := c.Query("user_id"); v != "" {
		if userID, err := strconv.ParseUint(v, 10, 64); err == nil {
			q = q.Where("user_id = ?", userID)
		}
	}
	if v := c.Query("action"); v != "" {
		q = q.Where("action = ?", v)
	}
	if v := c.Query("entity"); v != "" {
		q = q.Where("entity = ?", v)
	}
	if from, err := time.Parse(time.DateOnly, c.Query("from")); err == nil {
		q = q.Where("created_at >= ?", from)
	}
	if to, err := time.Parse(time.DateOnly, c.Query("to")); err == nil {
		q = q.Where("created_at < ?", to.Add(24*time.Hour))
	}
	return q
}

// positiveQuery reads an integer query value, using def when it is missing,
// not positive or above ceiling (0 means unbounded).
func positiveQuery(c *gin.Context, key string, def, ceiling int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n <= 0 || (ceiling > 0 && n > ceiling) {
		return def
	}
	return n
}
