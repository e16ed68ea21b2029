package link

import (
	"context"

	"github.com/valleclinic/clinic-api/internal/audit"
	domain "github.com/valleclinic/clinic-api/internal/domain/link"
	"github.com/valleclinic/clinic-api/internal/httperr"
	"github.com/valleclinic/clinic-api/internal/models"
)

// SupplyLinks owns the appointment-supply join records. quantityUsed is
// bookkeeping only; Supply.Quantity is never reconciled here.
type SupplyLinks struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSupplyLinks(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SupplyLinks {
	return &SupplyLinks{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SupplyLinks) Create(
	ctx context.Context,
	actorID uint,
	appointmentID uint,
	supplyID uint,
	quantityUsed int,
) (*models.AppointmentSupply, error) {

	if appointmentID == 0 || supplyID == 0 {
		return nil, httperr.ErrBusiness("missing_reference")
	}
	if quantityUsed < 1 {
		return nil, httperr.ErrBusiness("invalid_quantity")
	}

	var created *models.AppointmentSupply
	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
		if _, err := tx.GetAppointmentByID(ctx, appointmentID); err != nil {
			return httperr.ErrBusiness("appointment_not_found")
		}
		if _, err := tx.GetSupplyByID(ctx, supplyID); err != nil {
			return httperr.ErrBusiness("supply_not_found")
		}

		// one live row per (appointment, supply) pair
		if _, err := tx.GetSupplyLink(ctx, appointmentID, supplyID); err == nil {
			return httperr.ErrBusiness("duplicate_link")
		}

		l := &models.AppointmentSupply{
			AppointmentID: appointmentID,
			SupplyID:      supplyID,
			QuantityUsed:  quantityUsed,
		}
		if err := tx.CreateSupplyLink(ctx, l); err != nil {
			return err
		}

		created = l
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_supply_created",
		Entity:   "appointment_supply",
		EntityID: &created.ID,
	})

	return created, nil
}

func (uc *SupplyLinks) UpdateQuantity(
	ctx context.Context,
	actorID uint,
	appointmentID uint,
	supplyID uint,
	quantityUsed int,
) (*models.AppointmentSupply, error) {

	if quantityUsed < 1 {
		return nil, httperr.ErrBusiness("invalid_quantity")
	}

	var updated *models.AppointmentSupply
	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
		l, err := tx.GetSupplyLink(ctx, appointmentID, supplyID)
		if err != nil {
			return httperr.ErrBusiness("link_not_found")
		}

		l.QuantityUsed = quantityUsed
		if err := tx.UpdateSupplyLink(ctx, l); err != nil {
			return err
		}

		updated = l
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_supply_updated",
		Entity:   "appointment_supply",
		EntityID: &updated.ID,
	})

	return updated, nil
}

func (uc *SupplyLinks) Delete(
	ctx context.Context,
	actorID uint,
	appointmentID uint,
	supplyID uint,
) error {

	var deletedID uint
	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
		l, err := tx.GetSupplyLink(ctx, appointmentID, supplyID)
		if err != nil {
			return httperr.ErrBusiness("link_not_found")
		}

		deletedID = l.ID
		return tx.SoftDeleteSupplyLink(ctx, l)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_supply_deleted",
		Entity:   "appointment_supply",
		EntityID: &deletedID,
	})

	return nil
}

func (uc *SupplyLinks) Get(
	ctx context.Context,
	appointmentID uint,
	supplyID uint,
) (*models.AppointmentSupply, error) {

	l, err := uc.repo.GetSupplyLink(ctx, appointmentID, supplyID)
	if err != nil {
		return nil, httperr.ErrBusiness("link_not_found")
	}
	return l, nil
}

func (uc *SupplyLinks) List(
	ctx context.Context,
) ([]models.AppointmentSupply, error) {
	return uc.repo.ListSupplyLinks(ctx)
}
