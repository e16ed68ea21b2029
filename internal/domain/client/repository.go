package client

import (
	"context"

	"github.com/valleclinic/clinic-api/internal/models"
)

// Repository covers the client-delete cascade. Deleting a client also
// retires its appointments and recurring templates, so the whole cascade
// runs through Transact and a failure rolls back every row.
type Repository interface {
	// Transact runs fn against a repository bound to one transaction.
	Transact(ctx context.Context, fn func(Repository) error) error

	GetClientByID(ctx context.Context, id uint) (*models.Client, error)

	SoftDeleteClientAppointments(ctx context.Context, clientID uint) error
	SoftDeleteClientTemplates(ctx context.Context, clientID uint) error
	SoftDeleteClient(ctx context.Context, c *models.Client) error
}
