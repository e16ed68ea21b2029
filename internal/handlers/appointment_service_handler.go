package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/valleclinic/clinic-api/internal/cache"
	"github.com/valleclinic/clinic-api/internal/httperr"
	"github.com/valleclinic/clinic-api/internal/httpresp"
	"github.com/valleclinic/clinic-api/internal/middleware"
	ucLink "github.com/valleclinic/clinic-api/internal/usecase/link"
)

// AppointmentServiceHandler manages the appointment-service join rows. The
// cached appointment-list projection embeds service names, so every mutation
// here invalidates it.
type AppointmentServiceHandler struct {
	links *ucLink.ServiceLinks
	cache *cache.Cache
}

func NewAppointmentServiceHandler(links *ucLink.ServiceLinks, cc *cache.Cache) *AppointmentServiceHandler {
	return &AppointmentServiceHandler{links: links, cache: cc}
}

type CreateAppointmentServiceRequest struct {
	AppointmentID uint `json:"appointment_id" binding:"required"`
	ServiceID     uint `json:"service_id" binding:"required"`
}

type UpdateAppointmentServiceRequest struct {
	NewServiceID uint `json:"new_service_id" binding:"required"`
}

func (h *AppointmentServiceHandler) List(c *gin.Context) {
	links, err := h.links.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_links", "Error al obtener los servicios de citas.")
		return
	}

	httpresp.List(c, links)
}

func (h *AppointmentServiceHandler) GetByPair(c *gin.Context) {
	appointmentID, err1 := parseIDParam(c, "appointment_id")
	serviceID, err2 := parseIDParam(c, "service_id")
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_id", "Identificadores inválidos.")
		return
	}

	link, err := h.links.Get(c.Request.Context(), appointmentID, serviceID)
	if err != nil {
		writeUsecaseError(c, err, "failed_to_get_link")
		return
	}

	httpresp.OK(c, link)
}

func (h *AppointmentServiceHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Faltan datos requeridos para crear un servicio de cita.")
		return
	}

	link, err := h.links.Create(c.Request.Context(), userID, req.AppointmentID, req.ServiceID)
	if err != nil {
		writeUsecaseError(c, err, "failed_to_create_link")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyAppointmentList)
	httpresp.Created(c, link)
}

func (h *AppointmentServiceHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err1 := parseIDParam(c, "appointment_id")
	serviceID, err2 := parseIDParam(c, "service_id")
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_id", "Identificadores inválidos.")
		return
	}

	var req UpdateAppointmentServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Faltan datos requeridos para actualizar el servicio de cita.")
		return
	}

	link, err := h.links.Repoint(c.Request.Context(), userID, appointmentID, serviceID, req.NewServiceID)
	if err != nil {
		writeUsecaseError(c, err, "failed_to_update_link")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyAppointmentList)
	httpresp.OK(c, link)
}

func (h *AppointmentServiceHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err1 := parseIDParam(c, "appointment_id")
	serviceID, err2 := parseIDParam(c, "service_id")
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_id", "Identificadores inválidos.")
		return
	}

	if err := h.links.Delete(c.Request.Context(), userID, appointmentID, serviceID); err != nil {
		writeUsecaseError(c, err, "failed_to_delete_link")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyAppointmentList)
	c.Status(http.StatusNoContent)
}
