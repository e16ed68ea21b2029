package appointment

import (
	"context"

	"github.com/valleclinic/clinic-api/internal/audit"
	domain "github.com/valleclinic/clinic-api/internal/domain/appointment"
	"github.com/valleclinic/clinic-api/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute soft-deletes an appointment. Deleting an already-deleted or
// missing appointment reports not-found; the original deletion timestamp is
// never rewritten.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	actorID uint,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.SoftDeleteAppointment(ctx, ap); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
