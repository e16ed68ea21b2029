package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/valleclinic/clinic-api/internal/config"
	"github.com/valleclinic/clinic-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	// The join carries its own timestamps, so GORM must use our model
	// instead of a bare pivot table.
	if err := db.SetupJoinTable(
		&models.Appointment{}, "Services", &models.AppointmentService{},
	); err != nil {
		log.Fatalf("failed to set up appointment_services join: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Service{},
		&models.Supply{},
		&models.Appointment{},
		&models.RecurringAppointment{},
		&models.AppointmentService{},
		&models.AppointmentSupply{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
