package client

import (
	"context"

	"github.com/valleclinic/clinic-api/internal/audit"
	domain "github.com/valleclinic/clinic-api/internal/domain/client"
	"github.com/valleclinic/clinic-api/internal/httperr"
)

type DeleteClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteClient {
	return &DeleteClient{
		repo:  repo,
		audit: audit,
	}
}

// Execute soft-deletes a client and cascades to its appointments and
// recurring templates in the same transaction. After it returns, none of
// the three resolve through normal lookups.
func (uc *DeleteClient) Execute(
	ctx context.Context,
	actorID uint,
	clientID uint,
) error {

	cl, err := uc.repo.GetClientByID(ctx, clientID)
	if err != nil {
		return httperr.ErrBusiness("client_not_found")
	}

	err = uc.repo.Transact(ctx, func(tx domain.Repository) error {
		if err := tx.SoftDeleteClientAppointments(ctx, cl.ID); err != nil {
			return err
		}
		if err := tx.SoftDeleteClientTemplates(ctx, cl.ID); err != nil {
			return err
		}
		return tx.SoftDeleteClient(ctx, cl)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &cl.ID,
	})

	return nil
}
