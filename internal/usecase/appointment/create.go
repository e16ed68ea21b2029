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

type CreateAppointmentInput struct {
	ActorID uint

	ClientID   uint
	ServiceIDs []uint

	Date   string
	Time   string
	Status string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// Everything is validated before the single store write; a failure here
	// persists nothing.
	if in.ClientID == 0 {
		return nil, httperr.ErrBusiness("missing_client")
	}
	if in.Time == "" {
		return nil, httperr.ErrBusiness("missing_time")
	}
	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("missing_services")
	}

	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	status := domain.InitialStatus()
	if in.Status != "" {
		status = domain.Status(in.Status)
		if !domain.IsValidStatus(status) {
			return nil, httperr.ErrBusiness("invalid_status")
		}
	}

	client, err := uc.repo.GetClientByID(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	services, err := uc.repo.GetServicesByIDs(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		AppointmentDate: date,
		AppointmentTime: in.Time,
		Status:          string(status),
		ClientID:        client.ID,
		Services:        services,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
