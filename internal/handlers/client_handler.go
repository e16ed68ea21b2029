package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/valleclinic/clinic-api/internal/audit"
	"github.com/valleclinic/clinic-api/internal/cache"
	"github.com/valleclinic/clinic-api/internal/httperr"
	"github.com/valleclinic/clinic-api/internal/httpresp"
	"github.com/valleclinic/clinic-api/internal/middleware"
	"github.com/valleclinic/clinic-api/internal/models"
	"github.com/valleclinic/clinic-api/internal/timezone"
	ucClient "github.com/valleclinic/clinic-api/internal/usecase/client"
)

type ClientHandler struct {
	db     *gorm.DB
	cache  *cache.Cache
	audit  *audit.Dispatcher
	delete *ucClient.DeleteClient
}

func NewClientHandler(db *gorm.DB, cc *cache.Cache, audit *audit.Dispatcher, del *ucClient.DeleteClient) *ClientHandler {
	return &ClientHandler{db: db, cache: cc, audit: audit, delete: del}
}

// ======================================================
// REQUESTS
// ======================================================

type ClientRequest struct {
	FirstName       string `json:"first_name" binding:"required"`
	MiddleName      string `json:"middle_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	EmergencyNumber string `json:"emergency_number" binding:"required"`
	BirthDate       string `json:"birth_date" binding:"required"`

	TotalAppointments *int `json:"total_appointments"`
}

type ClientDropdownDTO struct {
	ID              uint   `json:"id"`
	FullName        string `json:"full_name"`
	EmergencyNumber string `json:"emergency_number"`
}

// ======================================================
// READS
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	var clients []models.Client
	if err := h.db.Order("created_at ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Error al obtener los clientes.")
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) GetByID(c *gin.Context) {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente no encontrado.")
		return
	}

	httpresp.OK(c, client)
}

// Dropdown serves the denormalized selector projection, cached until the
// next client mutation.
func (h *ClientHandler) Dropdown(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []ClientDropdownDTO
	if h.cache.Get(ctx, cache.KeyClientsDropdown, &cached) {
		httpresp.List(c, cached)
		return
	}

	var clients []models.Client
	if err := h.db.
		Select("id", "first_name", "middle_name", "last_name", "emergency_number").
		Order("last_name ASC").
		Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Error al obtener los clientes.")
		return
	}

	items := make([]ClientDropdownDTO, 0, len(clients))
	for i := range clients {
		items = append(items, ClientDropdownDTO{
			ID:              clients[i].ID,
			FullName:        clients[i].FullName(),
			EmergencyNumber: clients[i].EmergencyNumber,
		})
	}

	h.cache.Set(ctx, cache.KeyClientsDropdown, items)
	httpresp.List(c, items)
}

// ======================================================
// WRITES
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos: "+err.Error())
		return
	}

	birthDate, err := time.ParseInLocation("2006-01-02", req.BirthDate, timezone.Location())
	if err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "La fecha de nacimiento debe ser válida.")
		return
	}

	client := models.Client{
		FirstName:       req.FirstName,
		MiddleName:      req.MiddleName,
		LastName:        req.LastName,
		EmergencyNumber: req.EmergencyNumber,
		BirthDate:       birthDate,
	}
	if req.TotalAppointments != nil {
		client.TotalAppointments = *req.TotalAppointments
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Error al crear el cliente.")
		return
	}

	h.invalidate(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente no encontrado o ya eliminado.")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos: "+err.Error())
		return
	}

	birthDate, err := time.ParseInLocation("2006-01-02", req.BirthDate, timezone.Location())
	if err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "La fecha de nacimiento debe ser válida.")
		return
	}

	client.FirstName = req.FirstName
	client.MiddleName = req.MiddleName
	client.LastName = req.LastName
	client.EmergencyNumber = req.EmergencyNumber
	client.BirthDate = birthDate
	if req.TotalAppointments != nil {
		client.TotalAppointments = *req.TotalAppointments
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Error al actualizar el cliente.")
		return
	}

	h.invalidate(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.OK(c, client)
}

// Delete applies the cascade policy explicitly: the client's appointments
// and recurring templates are soft-deleted in the same transaction.
func (h *ClientHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "El ID del cliente es obligatorio.")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), userID, id); err != nil {
		writeUsecaseError(c, err, "failed_to_delete_client")
		return
	}

	h.invalidate(c)
	httpresp.Message(c, 200, "Cliente eliminado correctamente.")
}

func (h *ClientHandler) invalidate(c *gin.Context) {
	h.cache.Invalidate(c.Request.Context(), cache.KeyClientsDropdown, cache.KeyAppointmentList)
}
