package link

import (
	"context"

	"github.com/valleclinic/clinic-api/internal/models"
)

// Repository covers the appointment-service and appointment-supply join
// records. Multi-statement mutations run through Transact so a failure rolls
// back every row touched by the call.
type Repository interface {
	// Transact runs fn against a repository bound to one transaction.
	Transact(ctx context.Context, fn func(Repository) error) error

	// -------- Referenced entities --------
	GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error)
	GetServiceByID(ctx context.Context, id uint) (*models.Service, error)
	GetSupplyByID(ctx context.Context, id uint) (*models.Supply, error)

	// -------- Appointment-Service --------
	CreateServiceLink(ctx context.Context, l *models.AppointmentService) error
	GetServiceLink(ctx context.Context, appointmentID, serviceID uint) (*models.AppointmentService, error)
	ListServiceLinks(ctx context.Context) ([]models.AppointmentService, error)
	RepointServiceLink(ctx context.Context, l *models.AppointmentService, newServiceID uint) error
	DeleteServiceLink(ctx context.Context, l *models.AppointmentService) error

	// -------- Appointment-Supply --------
	CreateSupplyLink(ctx context.Context, l *models.AppointmentSupply) error
	GetSupplyLink(ctx context.Context, appointmentID, supplyID uint) (*models.AppointmentSupply, error)
	ListSupplyLinks(ctx context.Context) ([]models.AppointmentSupply, error)
	UpdateSupplyLink(ctx context.Context, l *models.AppointmentSupply) error
	SoftDeleteSupplyLink(ctx context.Context, l *models.AppointmentSupply) error
}
