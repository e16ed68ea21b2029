package link

import (
	"context"

	"github.com/stretchr/testify/mock"

	domain "github.com/valleclinic/clinic-api/internal/domain/link"
	"github.com/valleclinic/clinic-api/internal/models"
)

// MockRepository is a mock implementation of the link domain repository.
// Transact runs fn against the mock itself, so a nil return from fn plays
// the committed case and a non-nil return plays the rolled-back case.
type MockRepository struct {
	mock.Mock
}

var _ domain.Repository = (*MockRepository)(nil)

func (m *MockRepository) Transact(ctx context.Context, fn func(domain.Repository) error) error {
	return fn(m)
}

func (m *MockRepository) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockRepository) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockRepository) GetSupplyByID(ctx context.Context, id uint) (*models.Supply, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supply), args.Error(1)
}

func (m *MockRepository) CreateServiceLink(ctx context.Context, l *models.AppointmentService) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockRepository) GetServiceLink(ctx context.Context, appointmentID, serviceID uint) (*models.AppointmentService, error) {
	args := m.Called(ctx, appointmentID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AppointmentService), args.Error(1)
}

func (m *MockRepository) ListServiceLinks(ctx context.Context) ([]models.AppointmentService, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AppointmentService), args.Error(1)
}

func (m *MockRepository) RepointServiceLink(ctx context.Context, l *models.AppointmentService, newServiceID uint) error {
	args := m.Called(ctx, l, newServiceID)
	return args.Error(0)
}

func (m *MockRepository) DeleteServiceLink(ctx context.Context, l *models.AppointmentService) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockRepository) CreateSupplyLink(ctx context.Context, l *models.AppointmentSupply) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockRepository) GetSupplyLink(ctx context.Context, appointmentID, supplyID uint) (*models.AppointmentSupply, error) {
	args := m.Called(ctx, appointmentID, supplyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AppointmentSupply), args.Error(1)
}

func (m *MockRepository) ListSupplyLinks(ctx context.Context) ([]models.AppointmentSupply, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AppointmentSupply), args.Error(1)
}

func (m *MockRepository) UpdateSupplyLink(ctx context.Context, l *models.AppointmentSupply) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockRepository) SoftDeleteSupplyLink(ctx context.Context, l *models.AppointmentSupply) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
