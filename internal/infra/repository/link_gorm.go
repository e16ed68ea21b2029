package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/valleclinic/clinic-api/internal/domain/link"
	"github.com/valleclinic/clinic-api/internal/models"
)

type LinkGormRepository struct {
	db *gorm.DB
}

func NewLinkGormRepository(db *gorm.DB) *LinkGormRepository {
	return &LinkGormRepository{db: db}
}

// Transact binds a repository to one database transaction; any error from fn
// rolls back every write made through it.
func (r *LinkGormRepository) Transact(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&LinkGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Referenced entities
// --------------------------------------------------

func (r *LinkGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *LinkGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *LinkGormRepository) GetSupplyByID(
	ctx context.Context,
	id uint,
) (*models.Supply, error) {

	var sup models.Supply
	if err := r.db.WithContext(ctx).First(&sup, id).Error; err != nil {
		return nil, err
	}
	return &sup, nil
}

// --------------------------------------------------
// Appointment-Service
// --------------------------------------------------

func (r *LinkGormRepository) CreateServiceLink(
	ctx context.Context,
	l *models.AppointmentService,
) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LinkGormRepository) GetServiceLink(
	ctx context.Context,
	appointmentID uint,
	serviceID uint,
) (*models.AppointmentService, error) {

	var l models.AppointmentService
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ? AND service_id = ?", appointmentID, serviceID).
		First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LinkGormRepository) ListServiceLinks(
	ctx context.Context,
) ([]models.AppointmentService, error) {

	var links []models.AppointmentService
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// RepointServiceLink moves a link to a different service. The pair is the
// primary key, so this is a delete plus insert preserving created_at.
func (r *LinkGormRepository) RepointServiceLink(
	ctx context.Context,
	l *models.AppointmentService,
	newServiceID uint,
) error {

	if err := r.db.WithContext(ctx).
		Where("appointment_id = ? AND service_id = ?", l.AppointmentID, l.ServiceID).
		Delete(&models.AppointmentService{}).Error; err != nil {
		return err
	}

	repointed := models.AppointmentService{
		AppointmentID: l.AppointmentID,
		ServiceID:     newServiceID,
		CreatedAt:     l.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&repointed).Error; err != nil {
		return err
	}

	*l = repointed
	return nil
}

func (r *LinkGormRepository) DeleteServiceLink(
	ctx context.Context,
	l *models.AppointmentService,
) error {
	return r.db.WithContext(ctx).
		Where("appointment_id = ? AND service_id = ?", l.AppointmentID, l.ServiceID).
		Delete(&models.AppointmentService{}).Error
}

// --------------------------------------------------
// Appointment-Supply
// --------------------------------------------------

func (r *LinkGormRepository) CreateSupplyLink(
	ctx context.Context,
	l *models.AppointmentSupply,
) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LinkGormRepository) GetSupplyLink(
	ctx context.Context,
	appointmentID uint,
	supplyID uint,
) (*models.AppointmentSupply, error) {

	var l models.AppointmentSupply
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ? AND supply_id = ?", appointmentID, supplyID).
		First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LinkGormRepository) ListSupplyLinks(
	ctx context.Context,
) ([]models.AppointmentSupply, error) {

	var links []models.AppointmentSupply
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *LinkGormRepository) UpdateSupplyLink(
	ctx context.Context,
	l *models.AppointmentSupply,
) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LinkGormRepository) SoftDeleteSupplyLink(
	ctx context.Context,
	l *models.AppointmentSupply,
) error {
	return r.db.WithContext(ctx).Delete(l).Error
}

// Compile-time check
var _ domain.Repository = (*LinkGormRepository)(nil)
