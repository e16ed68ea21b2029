package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/valleclinic/clinic-api/internal/httperr"
)

func TestDeleteAppointment(t *testing.T) {
	repo := &MockRepository{}
	uc := NewDeleteAppointment(repo, nil)

	ap := existingAppointment()
	repo.On("GetAppointmentByID", mock.Anything, uint(5)).Return(ap, nil)
	repo.On("SoftDeleteAppointment", mock.Anything, ap).Return(nil)

	err := uc.Execute(context.Background(), 1, 5)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteAppointmentAlreadyDeleted(t *testing.T) {
	repo := &MockRepository{}
	uc := NewDeleteAppointment(repo, nil)

	// soft-deleted rows are invisible to lookups, so a second delete
	// behaves exactly like deleting a row that never existed
	repo.On("GetAppointmentByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

	err := uc.Execute(context.Background(), 1, 5)

	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	repo.AssertNotCalled(t, "SoftDeleteAppointment", mock.Anything, mock.Anything)
}
