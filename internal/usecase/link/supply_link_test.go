package link

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

func TestSupplyLinkCreate(t *testing.T) {
	repo := &MockRepository{}
	uc := NewSupplyLinks(repo, nil)

	repo.On("GetAppointmentByID", mock.Anything, uint(1)).Return(&models.Appointment{ID: 1}, nil)
	repo.On("GetSupplyByID", mock.Anything, uint(4)).Return(&models.Supply{ID: 4}, nil)
	repo.On("GetSupplyLink", mock.Anything, uint(1), uint(4)).Return(nil, gorm.ErrRecordNotFound)
	repo.On("CreateSupplyLink", mock.Anything, mock.Anything).Return(nil)

	l, err := uc.Create(context.Background(), 7, 1, 4, 3)

	require.NoError(t, err)
	assert.Equal(t, 3, l.QuantityUsed)
	repo.AssertExpectations(t)
}

func TestSupplyLinkCreateQuantityBound(t *testing.T) {
	repo := &MockRepository{}
	uc := NewSupplyLinks(repo, nil)

	for _, q := range []int{0, -1, -10} {
		_, err := uc.Create(context.Background(), 7, 1, 4, q)
		assert.True(t, httperr.IsBusiness(err, "invalid_quantity"), "quantity %d", q)
	}
	repo.AssertNotCalled(t, "CreateSupplyLink", mock.Anything, mock.Anything)
}

func TestSupplyLinkCreateDuplicateLivePairRejected(t *testing.T) {
	repo := &MockRepository{}
	uc := NewSupplyLinks(repo, nil)

	repo.On("GetAppointmentByID", mock.Anything, uint(1)).Return(&models.Appointment{ID: 1}, nil)
	repo.On("GetSupplyByID", mock.Anything, uint(4)).Return(&models.Supply{ID: 4}, nil)
	repo.On("GetSupplyLink", mock.Anything, uint(1), uint(4)).
		Return(&models.AppointmentSupply{ID: 9, AppointmentID: 1, SupplyID: 4}, nil)

	_, err := uc.Create(context.Background(), 7, 1, 4, 2)

	assert.True(t, httperr.IsBusiness(err, "duplicate_link"))
	repo.AssertNotCalled(t, "CreateSupplyLink", mock.Anything, mock.Anything)
}

func TestSupplyLinkCreateUnknownSupply(t *testing.T) {
	repo := &MockRepository{}
	uc := NewSupplyLinks(repo, nil)

	repo.On("GetAppointmentByID", mock.Anything, uint(1)).Return(&models.Appointment{ID: 1}, nil)
	repo.On("GetSupplyByID", mock.Anything, uint(4)).Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.Create(context.Background(), 7, 1, 4, 2)

	assert.True(t, httperr.IsBusiness(err, "supply_not_found"))
	repo.AssertNotCalled(t, "CreateSupplyLink", mock.Anything, mock.Anything)
}

func TestSupplyLinkUpdateQuantity(t *testing.T) {
	repo := &MockRepository{}
	uc := NewSupplyLinks(repo, nil)

	existing := &models.AppointmentSupply{ID: 9, AppointmentID: 1, SupplyID: 4, QuantityUsed: 2}
	repo.On("GetSupplyLink", mock.Anything, uint(1), uint(4)).Return(existing, nil)
	repo.On("UpdateSupplyLink", mock.Anything, existing).Return(nil)

	l, err := uc.UpdateQuantity(context.Background(), 7, 1, 4, 5)

	require.NoError(t, err)
	assert.Equal(t, 5, l.QuantityUsed)
	repo.AssertExpectations(t)
}

func TestSupplyLinkUpdateQuantityBound(t *testing.T) {
	repo := &MockRepository{}
	uc := NewSupplyLinks(repo, nil)

	_, err := uc.UpdateQuantity(context.Background(), 7, 1, 4, 0)

	assert.True(t, httperr.IsBusiness(err, "invalid_quantity"))
	repo.AssertNotCalled(t, "GetSupplyLink", mock.Anything, mock.Anything, mock.Anything)
}

func TestSupplyLinkDeleteThenGoneFromLookups(t *testing.T) {
	repo := &MockRepository{}
	uc := NewSupplyLinks(repo, nil)

	existing := &models.AppointmentSupply{ID: 9, AppointmentID: 1, SupplyID: 4}
	repo.On("GetSupplyLink", mock.Anything, uint(1), uint(4)).Return(existing, nil).Once()
	repo.On("SoftDeleteSupplyLink", mock.Anything, existing).Return(nil)

	require.NoError(t, uc.Delete(context.Background(), 7, 1, 4))

	// the soft-deleted pair no longer resolves
	repo.On("GetSupplyLink", mock.Anything, uint(1), uint(4)).Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.Get(context.Background(), 1, 4)
	assert.True(t, httperr.IsBusiness(err, "link_not_found"))
}

func TestSupplyLinkDeleteNotFound(t *testing.T) {
	repo := &MockRepository{}
	uc := NewSupplyLinks(repo, nil)

	repo.On("GetSupplyLink", mock.Anything, uint(1), uint(4)).Return(nil, gorm.ErrRecordNotFound)

	err := uc.Delete(context.Background(), 7, 1, 4)

	assert.True(t, httperr.IsBusiness(err, "link_not_found"))
	repo.AssertNotCalled(t, "SoftDeleteSupplyLink", mock.Anything, mock.Anything)
}
