package appointment

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/valleclinic/clinic-api/internal/models"
)

// MockRepository is a mock implementation of the appointment domain
// repository.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetClientByID(ctx context.Context, id uint) (*models.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockRepository) GetServicesByIDs(ctx context.Context, ids []uint) ([]models.Service, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockRepository) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockRepository) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment, services []models.Service) error {
	args := m.Called(ctx, ap, services)
	return args.Error(0)
}

func (m *MockRepository) SoftDeleteAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}
