package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/valleclinic/clinic-api/internal/domain/appointment"
	"github.com/valleclinic/clinic-api/internal/httperr"
	"github.com/valleclinic/clinic-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Referenced entities
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) GetServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	// Repeating an id in the request is not an error; the count check below
	// must compare against distinct ids.
	unique := uniqueIDs(ids)

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", unique).
		Find(&services).Error; err != nil {
		return nil, err
	}

	if len(services) != len(unique) {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return services, nil
}

// uniqueIDs drops duplicates preserving first-seen order.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	// Create persists the appointment and its service join rows in one
	// transaction.
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Services").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Services").
		Order("created_at ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	services []models.Service,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Services").Save(ap).Error; err != nil {
			return err
		}

		if services != nil {
			if err := tx.Model(ap).
				Association("Services").
				Replace(services); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *AppointmentGormRepository) SoftDeleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Delete(ap).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
