package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/valleclinic/clinic-api/internal/cache"
	"github.com/valleclinic/clinic-api/internal/dto"
	"github.com/valleclinic/clinic-api/internal/httperr"
	"github.com/valleclinic/clinic-api/internal/httpresp"
	"github.com/valleclinic/clinic-api/internal/middleware"
	ucAppointment "github.com/valleclinic/clinic-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create *ucAppointment.CreateAppointment
	update *ucAppointment.UpdateAppointment
	delete *ucAppointment.DeleteAppointment
	get    *ucAppointment.GetAppointment
	list   *ucAppointment.ListAppointments

	cache *cache.Cache
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	del *ucAppointment.DeleteAppointment,
	get *ucAppointment.GetAppointment,
	list *ucAppointment.ListAppointments,
	cc *cache.Cache,
) *AppointmentHandler {
	return &AppointmentHandler{
		create: create,
		update: update,
		delete: del,
		get:    get,
		list:   list,
		cache:  cc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID   uint   `json:"client_id" binding:"required"`
	ServiceIDs []uint `json:"service_ids" binding:"required,min=1"`
	Date       string `json:"appointment_date" binding:"required"`
	Time       string `json:"appointment_time" binding:"required"`
	Status     string `json:"status"`
}

type UpdateAppointmentRequest struct {
	ClientID   *uint   `json:"client_id"`
	ServiceIDs []uint  `json:"service_ids"`
	Date       *string `json:"appointment_date"`
	Time       *string `json:"appointment_time"`
	Status     *string `json:"status"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Todos los campos son obligatorios.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ActorID:    userID,
		ClientID:   req.ClientID,
		ServiceIDs: req.ServiceIDs,
		Date:       req.Date,
		Time:       req.Time,
		Status:     req.Status,
	})
	if err != nil {
		writeUsecaseError(c, err, "failed_to_create_appointment")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyAppointmentList)
	httpresp.Created(c, ap)
}

// ======================================================
// READS
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []dto.AppointmentListDTO
	if h.cache.Get(ctx, cache.KeyAppointmentList, &cached) {
		httpresp.List(c, cached)
		return
	}

	projections, err := h.list.Execute(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al obtener citas.")
		return
	}

	h.cache.Set(ctx, cache.KeyAppointmentList, projections)
	httpresp.List(c, projections)
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "El ID de la cita es obligatorio.")
		return
	}

	projection, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		writeUsecaseError(c, err, "failed_to_get_appointment")
		return
	}

	httpresp.OK(c, projection)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "El ID de la cita es obligatorio.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		ActorID:       userID,
		AppointmentID: id,
		ClientID:      req.ClientID,
		ServiceIDs:    req.ServiceIDs,
		Date:          req.Date,
		Time:          req.Time,
		Status:        req.Status,
	})
	if err != nil {
		writeUsecaseError(c, err, "failed_to_update_appointment")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyAppointmentList)
	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "El ID de la cita es obligatorio.")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), userID, id); err != nil {
		writeUsecaseError(c, err, "failed_to_delete_appointment")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyAppointmentList)
	httpresp.Message(c, 200, "Cita eliminada correctamente.")
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
