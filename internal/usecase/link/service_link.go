package link

import (
	"context"

	"github.com/valleclinic/clinic-api/internal/audit"
	domain "github.com/valleclinic/clinic-api/internal/domain/link"
	"github.com/valleclinic/clinic-api/internal/httperr"
	"github.com/valleclinic/clinic-api/internal/models"
)

// ServiceLinks owns the appointment-service join records. Every mutation
// runs inside one transaction; validation failures roll back before any row
// is visible.
type ServiceLinks struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewServiceLinks(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ServiceLinks {
	return &ServiceLinks{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ServiceLinks) Create(
	ctx context.Context,
	actorID uint,
	appointmentID uint,
	serviceID uint,
) (*models.AppointmentService, error) {

	if appointmentID == 0 || serviceID == 0 {
		return nil, httperr.ErrBusiness("missing_reference")
	}

	var created *models.AppointmentService
	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
		if _, err := tx.GetAppointmentByID(ctx, appointmentID); err != nil {
			return httperr.ErrBusiness("appointment_not_found")
		}
		if _, err := tx.GetServiceByID(ctx, serviceID); err != nil {
			return httperr.ErrBusiness("service_not_found")
		}

		if _, err := tx.GetServiceLink(ctx, appointmentID, serviceID); err == nil {
			return httperr.ErrBusiness("duplicate_link")
		}

		l := &models.AppointmentService{
			AppointmentID: appointmentID,
			ServiceID:     serviceID,
		}
		if err := tx.CreateServiceLink(ctx, l); err != nil {
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
		Action:   "appointment_service_created",
		Entity:   "appointment_service",
		EntityID: &created.AppointmentID,
	})

	return created, nil
}

// Repoint moves an existing link to a different service.
func (uc *ServiceLinks) Repoint(
	ctx context.Context,
	actorID uint,
	appointmentID uint,
	serviceID uint,
	newServiceID uint,
) (*models.AppointmentService, error) {

	if newServiceID == 0 {
		return nil, httperr.ErrBusiness("missing_reference")
	}

	var repointed *models.AppointmentService
	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
		l, err := tx.GetServiceLink(ctx, appointmentID, serviceID)
		if err != nil {
			return httperr.ErrBusiness("link_not_found")
		}

		if _, err := tx.GetServiceByID(ctx, newServiceID); err != nil {
			return httperr.ErrBusiness("service_not_found")
		}

		if newServiceID != serviceID {
			if _, err := tx.GetServiceLink(ctx, appointmentID, newServiceID); err == nil {
				return httperr.ErrBusiness("duplicate_link")
			}
			if err := tx.RepointServiceLink(ctx, l, newServiceID); err != nil {
				return err
			}
		}

		repointed = l
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_service_updated",
		Entity:   "appointment_service",
		EntityID: &repointed.AppointmentID,
	})

	return repointed, nil
}

func (uc *ServiceLinks) Delete(
	ctx context.Context,
	actorID uint,
	appointmentID uint,
	serviceID uint,
) error {

	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
		l, err := tx.GetServiceLink(ctx, appointmentID, serviceID)
		if err != nil {
			return httperr.ErrBusiness("link_not_found")
		}
		return tx.DeleteServiceLink(ctx, l)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_service_deleted",
		Entity:   "appointment_service",
		EntityID: &appointmentID,
	})

	return nil
}

func (uc *ServiceLinks) Get(
	ctx context.Context,
	appointmentID uint,
	serviceID uint,
) (*models.AppointmentService, error) {

	l, err := uc.repo.GetServiceLink(ctx, appointmentID, serviceID)
	if err != nil {
		return nil, httperr.ErrBusiness("link_not_found")
	}
	return l, nil
}

func (uc *ServiceLinks) List(
	ctx context.Context,
) ([]models.AppointmentService, error) {
	return uc.repo.ListServiceLinks(ctx)
}
