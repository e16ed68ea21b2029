package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/valleclinic/clinic-api/internal/httperr"
	"github.com/valleclinic/clinic-api/internal/httpresp"
	"github.com/valleclinic/clinic-api/internal/middleware"
	ucLink "github.com/valleclinic/clinic-api/internal/usecase/link"
)

type AppointmentSupplyHandler struct {
	links *ucLink.SupplyLinks
}

func NewAppointmentSupplyHandler(links *ucLink.SupplyLinks) *AppointmentSupplyHandler {
	return &AppointmentSupplyHandler{links: links}
}

type CreateAppointmentSupplyRequest struct {
	AppointmentID uint `json:"appointment_id" binding:"required"`
	SupplyID      uint `json:"supply_id" binding:"required"`
	QuantityUsed  int  `json:"quantity_used" binding:"required"`
}

type UpdateAppointmentSupplyRequest struct {
	QuantityUsed int `json:"quantity_used" binding:"required"`
}

func (h *AppointmentSupplyHandler) List(c *gin.Context) {
	links, err := h.links.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_links", "Error al obtener los insumos de citas.")
		return
	}

	httpresp.List(c, links)
}

func (h *AppointmentSupplyHandler) GetByPair(c *gin.Context) {
	appointmentID, err1 := parseIDParam(c, "appointment_id")
	supplyID, err2 := parseIDParam(c, "supply_id")
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_id", "Identificadores inválidos.")
		return
	}

	link, err := h.links.Get(c.Request.Context(), appointmentID, supplyID)
	if err != nil {
		writeUsecaseError(c, err, "failed_to_get_link")
		return
	}

	httpresp.OK(c, link)
}

func (h *AppointmentSupplyHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentSupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Faltan datos requeridos para crear un insumo de cita.")
		return
	}

	link, err := h.links.Create(c.Request.Context(), userID, req.AppointmentID, req.SupplyID, req.QuantityUsed)
	if err != nil {
		writeUsecaseError(c, err, "failed_to_create_link")
		return
	}

	httpresp.Created(c, link)
}

func (h *AppointmentSupplyHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err1 := parseIDParam(c, "appointment_id")
	supplyID, err2 := parseIDParam(c, "supply_id")
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_id", "Identificadores inválidos.")
		return
	}

	var req UpdateAppointmentSupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Faltan datos requeridos para actualizar el insumo de cita.")
		return
	}

	link, err := h.links.UpdateQuantity(c.Request.Context(), userID, appointmentID, supplyID, req.QuantityUsed)
	if err != nil {
		writeUsecaseError(c, err, "failed_to_update_link")
		return
	}

	httpresp.OK(c, link)
}

func (h *AppointmentSupplyHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err1 := parseIDParam(c, "appointment_id")
	supplyID, err2 := parseIDParam(c, "supply_id")
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_id", "Identificadores inválidos.")
		return
	}

	if err := h.links.Delete(c.Request.Context(), userID, appointmentID, supplyID); err != nil {
		writeUsecaseError(c, err, "failed_to_delete_link")
		return
	}

	httpresp.Message(c, 200, "Relación eliminada correctamente.")
}
