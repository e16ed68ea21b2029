package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/valleclinic/clinic-api/internal/audit"
	domain "github.com/valleclinic/clinic-api/internal/domain/appointment"
	"github.com/valleclinic/clinic-api/internal/httperr"
	"github.com/valleclinic/clinic-api/internal/httpresp"
	"github.com/valleclinic/clinic-api/internal/middleware"
	"github.com/valleclinic/clinic-api/internal/models"
	"github.com/valleclinic/clinic-api/internal/timezone"
)

// RecurringAppointmentHandler manages recurrence templates. Templates are
// records only; occurrences are never expanded here.
type RecurringAppointmentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewRecurringAppointmentHandler(db *gorm.DB, audit *audit.Dispatcher) *RecurringAppointmentHandler {
	return &RecurringAppointmentHandler{db: db, audit: audit}
}

type RecurringAppointmentRequest struct {
	ClientID        uint   `json:"client_id" binding:"required"`
	StartDate       string `json:"start_date" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	Interval        string `json:"interval" binding:"required,oneof=weekly monthly"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
	Status          string `json:"status"`
}

func (h *RecurringAppointmentHandler) List(c *gin.Context) {
	var templates []models.RecurringAppointment
	if err := h.db.
		Preload("Client").
		Order("created_at ASC").
		Find(&templates).Error; err != nil {
		httperr.Internal(c, "failed_to_list_recurring", "Error al obtener citas recurrentes.")
		return
	}

	httpresp.List(c, templates)
}

func (h *RecurringAppointmentHandler) GetByID(c *gin.Context) {
	var template models.RecurringAppointment
	if err := h.db.
		Preload("Client").
		First(&template, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "recurring_not_found", "Cita recurrente no encontrada.")
		return
	}

	httpresp.OK(c, template)
}

func (h *RecurringAppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req RecurringAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Todos los campos son obligatorios.")
		return
	}

	startDate, err := timezone.ParseDate(req.StartDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "La fecha de inicio debe ser válida.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, req.ClientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente no encontrado.")
		return
	}

	status := string(domain.InitialStatus())
	if req.Status != "" {
		if !domain.IsValidStatus(domain.Status(req.Status)) {
			httperr.BadRequest(c, "invalid_status", "Estado inválido.")
			return
		}
		status = req.Status
	}

	template := models.RecurringAppointment{
		ClientID:        client.ID,
		StartDate:       startDate,
		StartTime:       req.StartTime,
		Interval:        req.Interval,
		DurationMinutes: req.DurationMinutes,
		Status:          status,
	}

	if err := h.db.Create(&template).Error; err != nil {
		httperr.Internal(c, "failed_to_create_recurring", "Error al crear la cita recurrente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "recurring_appointment_created",
		Entity:   "recurring_appointment",
		EntityID: &template.ID,
	})

	httpresp.Created(c, template)
}

func (h *RecurringAppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var template models.RecurringAppointment
	if err := h.db.First(&template, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "recurring_not_found", "Cita recurrente no encontrada o ya eliminada.")
		return
	}

	var req RecurringAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Todos los campos son obligatorios.")
		return
	}

	startDate, err := timezone.ParseDate(req.StartDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "La fecha de inicio debe ser válida.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, req.ClientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente no encontrado.")
		return
	}

	if req.Status != "" {
		if err := domain.Transition(domain.Status(template.Status), domain.Status(req.Status)); err != nil {
			writeUsecaseError(c, err, "failed_to_update_recurring")
			return
		}
		template.Status = req.Status
	}

	template.ClientID = client.ID
	template.StartDate = startDate
	template.StartTime = req.StartTime
	template.Interval = req.Interval
	template.DurationMinutes = req.DurationMinutes

	if err := h.db.Save(&template).Error; err != nil {
		httperr.Internal(c, "failed_to_update_recurring", "Error al actualizar la cita recurrente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "recurring_appointment_updated",
		Entity:   "recurring_appointment",
		EntityID: &template.ID,
	})

	httpresp.OK(c, template)
}

func (h *RecurringAppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var template models.RecurringAppointment
	if err := h.db.First(&template, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "recurring_not_found", "Cita recurrente no encontrada o ya eliminada.")
		return
	}

	if err := h.db.Delete(&template).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_recurring", "Error al eliminar la cita recurrente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "recurring_appointment_deleted",
		Entity:   "recurring_appointment",
		EntityID: &template.ID,
	})

	httpresp.Message(c, 200, "Cita recurrente eliminada correctamente.")
}
