package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/valleclinic/clinic-api/internal/httperr"
	"github.com/valleclinic/clinic-api/internal/models"
)

func TestGetAppointmentProjection(t *testing.T) {
	repo := &MockRepository{}
	uc := NewGetAppointment(repo)

	ap := existingAppointment()
	ap.Client = models.Client{ID: 10, FirstName: "Ana", MiddleName: "María", LastName: "Reyes"}
	ap.Services = []models.Service{{ID: 20, Name: "Consulta"}, {ID: 21, Name: "Limpieza"}}
	repo.On("GetAppointmentByID", mock.Anything, uint(5)).Return(ap, nil)

	projection, err := uc.Execute(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "Ana María Reyes", projection.FullName)
	assert.Equal(t, "2024-07-01", projection.AppointmentDate)
	assert.Equal(t, "Consulta, Limpieza", projection.Services)
}

func TestGetAppointmentDeletedClientPlaceholder(t *testing.T) {
	repo := &MockRepository{}
	uc := NewGetAppointment(repo)

	// a cascaded client delete leaves the appointment row pointing at a
	// client that no longer preloads
	ap := existingAppointment()
	ap.Client = models.Client{}
	repo.On("GetAppointmentByID", mock.Anything, uint(5)).Return(ap, nil)

	projection, err := uc.Execute(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "Cliente no disponible", projection.FullName)
}

func TestGetAppointmentNotFound(t *testing.T) {
	repo := &MockRepository{}
	uc := NewGetAppointment(repo)

	repo.On("GetAppointmentByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.Execute(context.Background(), 99)

	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
