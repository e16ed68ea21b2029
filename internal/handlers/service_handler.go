package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/valleclinic/clinic-api/internal/audit"
	"github.com/valleclinic/clinic-api/internal/cache"
	"github.com/valleclinic/clinic-api/internal/httperr"
	"github.com/valleclinic/clinic-api/internal/httpresp"
	"github.com/valleclinic/clinic-api/internal/middleware"
	"github.com/valleclinic/clinic-api/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, cc *cache.Cache, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, cache: cc, audit: audit}
}

type ServiceRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required,gt=0"`
}

type ServiceDropdownDTO struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("created_at ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error al obtener los servicios.")
		return
	}

	httpresp.List(c, services)
}

// Search resolves either a numeric id or a case-insensitive name fragment.
func (h *ServiceHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Param("query"))

	if id, err := strconv.ParseUint(query, 10, 64); err == nil {
		var service models.Service
		if err := h.db.First(&service, uint(id)).Error; err != nil {
			httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
			return
		}
		httpresp.OK(c, service)
		return
	}

	var services []models.Service
	if err := h.db.
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_search_services", "Error al realizar la búsqueda.")
		return
	}

	if len(services) == 0 {
		httperr.NotFound(c, "service_not_found", "No se encontraron coincidencias.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Dropdown(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []ServiceDropdownDTO
	if h.cache.Get(ctx, cache.KeyServicesDropdown, &cached) {
		httpresp.List(c, cached)
		return
	}

	var services []models.Service
	if err := h.db.
		Select("id", "name", "price").
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error al obtener los servicios.")
		return
	}

	items := make([]ServiceDropdownDTO, 0, len(services))
	for _, s := range services {
		items = append(items, ServiceDropdownDTO{ID: s.ID, Name: s.Name, Price: s.Price})
	}

	h.cache.Set(ctx, cache.KeyServicesDropdown, items)
	httpresp.List(c, items)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "El nombre y un precio mayor a 0 son obligatorios.")
		return
	}

	service := models.Service{Name: req.Name, Price: req.Price}
	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Error al crear el servicio.")
		return
	}

	h.invalidate(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &service.ID,
	})

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var service models.Service
	if err := h.db.First(&service, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado o ya eliminado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "El nombre y un precio mayor a 0 son obligatorios.")
		return
	}

	service.Name = req.Name
	service.Price = req.Price

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Error al actualizar el servicio.")
		return
	}

	h.invalidate(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &service.ID,
	})

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var service models.Service
	if err := h.db.First(&service, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Error al eliminar el servicio.")
		return
	}

	h.invalidate(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &service.ID,
	})

	httpresp.Message(c, 200, "Servicio eliminado correctamente.")
}

func (h *ServiceHandler) invalidate(c *gin.Context) {
	h.cache.Invalidate(c.Request.Context(), cache.KeyServicesDropdown, cache.KeyAppointmentList)
}
