package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/valleclinic/clinic-api/internal/domain/client"
	"github.com/valleclinic/clinic-api/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) Transact(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ClientGormRepository{db: tx})
	})
}

func (r *ClientGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientGormRepository) SoftDeleteClientAppointments(
	ctx context.Context,
	clientID uint,
) error {
	return r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&models.Appointment{}).Error
}

func (r *ClientGormRepository) SoftDeleteClientTemplates(
	ctx context.Context,
	clientID uint,
) error {
	return r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&models.RecurringAppointment{}).Error
}

func (r *ClientGormRepository) SoftDeleteClient(
	ctx context.Context,
	c *models.Client,
) error {
	return r.db.WithContext(ctx).Delete(c).Error
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
