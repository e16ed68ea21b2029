package link

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/valleclinic/clinic-api/internal/httperr"
	"github.com/valleclinic/clinic-api/internal/models"
)

func TestServiceLinkCreate(t *testing.T) {
	repo := &MockRepository{}
	uc := NewServiceLinks(repo, nil)

	repo.On("GetAppointmentByID", mock.Anything, uint(1)).Return(&models.Appointment{ID: 1}, nil)
	repo.On("GetServiceByID", mock.Anything, uint(2)).Return(&models.Service{ID: 2}, nil)
	repo.On("GetServiceLink", mock.Anything, uint(1), uint(2)).Return(nil, gorm.ErrRecordNotFound)
	repo.On("CreateServiceLink", mock.Anything, mock.Anything).Return(nil)

	l, err := uc.Create(context.Background(), 7, 1, 2)

	require.NoError(t, err)
	assert.Equal(t, uint(1), l.AppointmentID)
	assert.Equal(t, uint(2), l.ServiceID)
	repo.AssertExpectations(t)
}

func TestServiceLinkCreateDuplicateRejected(t *testing.T) {
	repo := &MockRepository{}
	uc := NewServiceLinks(repo, nil)

	repo.On("GetAppointmentByID", mock.Anything, uint(1)).Return(&models.Appointment{ID: 1}, nil)
	repo.On("GetServiceByID", mock.Anything, uint(2)).Return(&models.Service{ID: 2}, nil)
	repo.On("GetServiceLink", mock.Anything, uint(1), uint(2)).
		Return(&models.AppointmentService{AppointmentID: 1, ServiceID: 2}, nil)

	_, err := uc.Create(context.Background(), 7, 1, 2)

	assert.True(t, httperr.IsBusiness(err, "duplicate_link"))
	repo.AssertNotCalled(t, "CreateServiceLink", mock.Anything, mock.Anything)
}

func TestServiceLinkCreateMissingReference(t *testing.T) {
	repo := &MockRepository{}
	uc := NewServiceLinks(repo, nil)

	_, err := uc.Create(context.Background(), 7, 0, 2)

	assert.True(t, httperr.IsBusiness(err, "missing_reference"))
	repo.AssertNotCalled(t, "GetAppointmentByID", mock.Anything, mock.Anything)
}

func TestServiceLinkCreateUnknownAppointment(t *testing.T) {
	repo := &MockRepository{}
	uc := NewServiceLinks(repo, nil)

	repo.On("GetAppointmentByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.Create(context.Background(), 7, 9, 2)

	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	repo.AssertNotCalled(t, "CreateServiceLink", mock.Anything, mock.Anything)
}

func TestServiceLinkCreateWriteFailureSurfaces(t *testing.T) {
	repo := &MockRepository{}
	uc := NewServiceLinks(repo, nil)

	boom := errors.New("write failed")
	repo.On("GetAppointmentByID", mock.Anything, uint(1)).Return(&models.Appointment{ID: 1}, nil)
	repo.On("GetServiceByID", mock.Anything, uint(2)).Return(&models.Service{ID: 2}, nil)
	repo.On("GetServiceLink", mock.Anything, uint(1), uint(2)).Return(nil, gorm.ErrRecordNotFound)
	repo.On("CreateServiceLink", mock.Anything, mock.Anything).Return(boom)

	_, err := uc.Create(context.Background(), 7, 1, 2)

	assert.ErrorIs(t, err, boom)
}

func TestServiceLinkRepoint(t *testing.T) {
	repo := &MockRepository{}
	uc := NewServiceLinks(repo, nil)

	existing := &models.AppointmentService{AppointmentID: 1, ServiceID: 2}
	repo.On("GetServiceLink", mock.Anything, uint(1), uint(2)).Return(existing, nil)
	repo.On("GetServiceByID", mock.Anything, uint(3)).Return(&models.Service{ID: 3}, nil)
	repo.On("GetServiceLink", mock.Anything, uint(1), uint(3)).Return(nil, gorm.ErrRecordNotFound)
	repo.On("RepointServiceLink", mock.Anything, existing, uint(3)).Return(nil)

	_, err := uc.Repoint(context.Background(), 7, 1, 2, 3)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestServiceLinkRepointToOccupiedPairRejected(t *testing.T) {
	repo := &MockRepository{}
	uc := NewServiceLinks(repo, nil)

	existing := &models.AppointmentService{AppointmentID: 1, ServiceID: 2}
	repo.On("GetServiceLink", mock.Anything, uint(1), uint(2)).Return(existing, nil)
	repo.On("GetServiceByID", mock.Anything, uint(3)).Return(&models.Service{ID: 3}, nil)
	repo.On("GetServiceLink", mock.Anything, uint(1), uint(3)).
		Return(&models.AppointmentService{AppointmentID: 1, ServiceID: 3}, nil)

	_, err := uc.Repoint(context.Background(), 7, 1, 2, 3)

	assert.True(t, httperr.IsBusiness(err, "duplicate_link"))
	repo.AssertNotCalled(t, "RepointServiceLink", mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceLinkRepointSameServiceIsNoop(t *testing.T) {
	repo := &MockRepository{}
	uc := NewServiceLinks(repo, nil)

	existing := &models.AppointmentService{AppointmentID: 1, ServiceID: 2}
	repo.On("GetServiceLink", mock.Anything, uint(1), uint(2)).Return(existing, nil)
	repo.On("GetServiceByID", mock.Anything, uint(2)).Return(&models.Service{ID: 2}, nil)

	l, err := uc.Repoint(context.Background(), 7, 1, 2, 2)

	require.NoError(t, err)
	assert.Equal(t, uint(2), l.ServiceID)
	repo.AssertNotCalled(t, "RepointServiceLink", mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceLinkDeleteNotFound(t *testing.T) {
	repo := &MockRepository{}
	uc := NewServiceLinks(repo, nil)

	repo.On("GetServiceLink", mock.Anything, uint(1), uint(2)).Return(nil, gorm.ErrRecordNotFound)

	err := uc.Delete(context.Background(), 7, 1, 2)

	assert.True(t, httperr.IsBusiness(err, "link_not_found"))
	repo.AssertNotCalled(t, "DeleteServiceLink", mock.Anything, mock.Anything)
}
