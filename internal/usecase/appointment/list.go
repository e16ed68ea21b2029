package appointment

import (
	"context"

	domain "github.com/valleclinic/clinic-api/internal/domain/appointment"
	"github.com/valleclinic/clinic-api/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns the joined projection for every live appointment. An empty
// clinic yields an empty slice, never an error.
func (uc *ListAppointments) Execute(
	ctx context.Context,
) ([]dto.AppointmentListDTO, error) {

	aps, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	projections := make([]dto.AppointmentListDTO, 0, len(aps))
	for i := range aps {
		projections = append(projections, toListDTO(&aps[i]))
	}
	return projections, nil
}
