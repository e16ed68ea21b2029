package appointment

import (
	"context"

	"github.com/valleclinic/clinic-api/internal/audit"
	domain "github.com/valleclinic/clinic-api/internal/domain/appointment"
	"github.com/valleclinic/clinic-api/internal/httperr"
	"github.com/valleclinic/clinic-api/internal/models"
	"github.com/valleclinic/clinic-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// Nil pointer fields are left untouched; a nil ServiceIDs keeps the current
// service links.
type UpdateAppointmentInput struct {
	ActorID       uint
	AppointmentID uint

	Date       *string
	Time       *string
	ClientID   *uint
	ServiceIDs []uint
	Status     *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if in.Date != nil {
		date, err := timezone.ParseDate(*in.Date)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		ap.AppointmentDate = date
	}

	if in.Time != nil {
		if *in.Time == "" {
			return nil, httperr.ErrBusiness("missing_time")
		}
		ap.AppointmentTime = *in.Time
	}

	if in.Status != nil {
		if err := domain.Transition(domain.Status(ap.Status), domain.Status(*in.Status)); err != nil {
			return nil, err
		}
		ap.Status = *in.Status
	}

	if in.ClientID != nil {
		client, err := uc.repo.GetClientByID(ctx, *in.ClientID)
		if err != nil {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		ap.ClientID = client.ID
		ap.Client = *client
	}

	var services []models.Service
	if in.ServiceIDs != nil {
		if len(in.ServiceIDs) == 0 {
			return nil, httperr.ErrBusiness("missing_services")
		}
		services, err = uc.repo.GetServicesByIDs(ctx, in.ServiceIDs)
		if err != nil {
			return nil, err
		}
	}

	if err := uc.repo.UpdateAppointment(ctx, ap, services); err != nil {
		return nil, err
	}
	if services != nil {
		ap.Services = services
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
