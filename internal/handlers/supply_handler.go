package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/valleclinic/clinic-api/internal/audit"
	"github.com/valleclinic/clinic-api/internal/httperr"
	"github.com/valleclinic/clinic-api/internal/httpresp"
	"github.com/valleclinic/clinic-api/internal/middleware"
	"github.com/valleclinic/clinic-api/internal/models"
	"github.com/valleclinic/clinic-api/internal/timezone"
)

type SupplyHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSupplyHandler(db *gorm.DB, audit *audit.Dispatcher) *SupplyHandler {
	return &SupplyHandler{db: db, audit: audit}
}

type SupplyRequest struct {
	Name           string  `json:"name" binding:"required"`
	Quantity       *int    `json:"quantity" binding:"required,gte=0"`
	ExpirationDate string  `json:"expiration_date" binding:"required"`
	Price          float64 `json:"price" binding:"required,gt=0"`
}

func (h *SupplyHandler) List(c *gin.Context) {
	var supplies []models.Supply
	if err := h.db.Order("created_at ASC").Find(&supplies).Error; err != nil {
		httperr.Internal(c, "failed_to_list_supplies", "Error al obtener los insumos.")
		return
	}

	httpresp.List(c, supplies)
}

func (h *SupplyHandler) GetByID(c *gin.Context) {
	var supply models.Supply
	if err := h.db.First(&supply, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "supply_not_found", "Insumo no encontrado.")
		return
	}

	httpresp.OK(c, supply)
}

func (h *SupplyHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req SupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos: "+err.Error())
		return
	}

	expiration, err := time.ParseInLocation("2006-01-02", req.ExpirationDate, timezone.Location())
	if err != nil {
		httperr.BadRequest(c, "invalid_expiration_date", "La fecha de caducidad debe ser válida.")
		return
	}

	supply := models.Supply{
		Name:           req.Name,
		Quantity:       *req.Quantity,
		ExpirationDate: expiration,
		Price:          req.Price,
	}

	if err := h.db.Create(&supply).Error; err != nil {
		httperr.Internal(c, "failed_to_create_supply", "Error al crear el insumo.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "supply_created",
		Entity:   "supply",
		EntityID: &supply.ID,
	})

	httpresp.Created(c, supply)
}

func (h *SupplyHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var supply models.Supply
	if err := h.db.First(&supply, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "supply_not_found", "Insumo no encontrado o ya eliminado.")
		return
	}

	var req SupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos: "+err.Error())
		return
	}

	expiration, err := time.ParseInLocation("2006-01-02", req.ExpirationDate, timezone.Location())
	if err != nil {
		httperr.BadRequest(c, "invalid_expiration_date", "La fecha de caducidad debe ser válida.")
		return
	}

	supply.Name = req.Name
	supply.Quantity = *req.Quantity
	supply.ExpirationDate = expiration
	supply.Price = req.Price

	if err := h.db.Save(&supply).Error; err != nil {
		httperr.Internal(c, "failed_to_update_supply", "Error al actualizar el insumo.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "supply_updated",
		Entity:   "supply",
		EntityID: &supply.ID,
	})

	httpresp.OK(c, supply)
}

func (h *SupplyHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var supply models.Supply
	if err := h.db.First(&supply, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "supply_not_found", "Insumo no encontrado o ya eliminado.")
		return
	}

	if err := h.db.Delete(&supply).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_supply", "Error al eliminar el insumo.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "supply_deleted",
		Entity:   "supply",
		EntityID: &supply.ID,
	})

	httpresp.Message(c, 200, "Insumo eliminado correctamente.")
}
