package appointment

import (
	"context"

	"github.com/valleclinic/clinic-api/internal/models"
)

type Repository interface {
	// -------- Referenced entities --------
	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	// UpdateAppointment saves scalar fields and, when services is non-nil,
	// replaces the service associations in the same transaction.
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		services []models.Service,
	) error

	SoftDeleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
