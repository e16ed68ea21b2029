package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/valleclinic/clinic-api/internal/audit"
	"github.com/valleclinic/clinic-api/internal/cache"
	"github.com/valleclinic/clinic-api/internal/config"
	"github.com/valleclinic/clinic-api/internal/handlers"
	infraRepo "github.com/valleclinic/clinic-api/internal/infra/repository"
	"github.com/valleclinic/clinic-api/internal/middleware"
	"github.com/valleclinic/clinic-api/internal/storage"
	ucAppointment "github.com/valleclinic/clinic-api/internal/usecase/appointment"
	ucClient "github.com/valleclinic/clinic-api/internal/usecase/client"
	ucLink "github.com/valleclinic/clinic-api/internal/usecase/link"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	linkRepo := infraRepo.NewLinkGormRepository(db)
	clientRepo := infraRepo.NewClientGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	projectionCache := cache.New(cfg.RedisURL)
	avatarStore := storage.NewAvatarStore(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	serviceLinksUC := ucLink.NewServiceLinks(linkRepo, auditDispatcher)
	supplyLinksUC := ucLink.NewSupplyLinks(linkRepo, auditDispatcher)

	deleteClientUC := ucClient.NewDeleteClient(clientRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, avatarStore)

	clientHandler := handlers.NewClientHandler(db, projectionCache, auditDispatcher, deleteClientUC)
	serviceHandler := handlers.NewServiceHandler(db, projectionCache, auditDispatcher)
	supplyHandler := handlers.NewSupplyHandler(db, auditDispatcher)
	recurringHandler := handlers.NewRecurringAppointmentHandler(db, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		getAppointmentUC,
		listAppointmentsUC,
		projectionCache,
	)
	appointmentServiceHandler := handlers.NewAppointmentServiceHandler(serviceLinksUC, projectionCache)
	appointmentSupplyHandler := handlers.NewAppointmentSupplyHandler(supplyLinksUC)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/users/register", authHandler.Register)
		api.POST("/users/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/users/profile", meHandler.GetProfile)
			secured.POST("/users/profile/avatar", meHandler.UploadAvatar)
			secured.DELETE("/users/profile", meHandler.DeleteAccount)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/dropdown", clientHandler.Dropdown)
			secured.GET("/clients/:id", clientHandler.GetByID)
			secured.POST("/clients", clientHandler.Create)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.GET("/services/dropdown", serviceHandler.Dropdown)
			secured.GET("/services/search/:query", serviceHandler.Search)
			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// SUPPLIES (mutations are admin-only)
			// ------------------------------
			secured.GET("/supplies", supplyHandler.List)
			secured.GET("/supplies/:id", supplyHandler.GetByID)

			adminSupplies := secured.Group("/supplies")
			adminSupplies.Use(middleware.RequireRole("admin"))
			{
				adminSupplies.POST("", supplyHandler.Create)
				adminSupplies.PUT("/:id", supplyHandler.Update)
				adminSupplies.DELETE("/:id", supplyHandler.Delete)
			}

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.GetByID)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// RECURRING APPOINTMENTS
			// ------------------------------
			secured.GET("/recurring-appointments", recurringHandler.List)
			secured.GET("/recurring-appointments/:id", recurringHandler.GetByID)
			secured.POST("/recurring-appointments", recurringHandler.Create)
			secured.PUT("/recurring-appointments/:id", recurringHandler.Update)
			secured.DELETE("/recurring-appointments/:id", recurringHandler.Delete)

			// ------------------------------
			// APPOINTMENT-SERVICE LINKS
			// ------------------------------
			secured.GET("/appointment-services", appointmentServiceHandler.List)
			secured.GET("/appointment-services/:appointment_id/:service_id", appointmentServiceHandler.GetByPair)
			secured.POST("/appointment-services", appointmentServiceHandler.Create)
			secured.PUT("/appointment-services/:appointment_id/:service_id", appointmentServiceHandler.Update)
			secured.DELETE("/appointment-services/:appointment_id/:service_id", appointmentServiceHandler.Delete)

			// ------------------------------
			// APPOINTMENT-SUPPLY LINKS
			// ------------------------------
			secured.GET("/appointment-supplies", appointmentSupplyHandler.List)
			secured.GET("/appointment-supplies/:appointment_id/:supply_id", appointmentSupplyHandler.GetByPair)
			secured.POST("/appointment-supplies", appointmentSupplyHandler.Create)
			secured.PUT("/appointment-supplies/:appointment_id/:supply_id", appointmentSupplyHandler.Update)
			secured.DELETE("/appointment-supplies/:appointment_id/:supply_id", appointmentSupplyHandler.Delete)

			// ------------------------------
			// AUDIT LOGS (admin-only)
			// ------------------------------
			adminLogs := secured.Group("/audit-logs")
			adminLogs.Use(middleware.RequireRole("admin"))
			{
				adminLogs.GET("", auditLogsHandler.List)
			}
		}
	}
}
