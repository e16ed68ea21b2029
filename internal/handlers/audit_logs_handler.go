package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/valleclinic/clinic-api/internal/httperr"
	"github.com/valleclinic/clinic-api/internal/httpresp"
	"github.com/valleclinic/clinic-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 500 {
			httperr.BadRequest(c, "invalid_limit", "El límite debe estar entre 1 y 500.")
			return
		}
		limit = parsed
	}

	q := h.db.Order("created_at DESC").Limit(limit)

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := q.Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Error al obtener la bitácora.")
		return
	}

	httpresp.List(c, logs)
}
