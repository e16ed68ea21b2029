package appointment

import (
	"context"
	"strings"

	domain "github.com/valleclinic/clinic-api/internal/domain/appointment"
	"github.com/valleclinic/clinic-api/internal/dto"
	"github.com/valleclinic/clinic-api/internal/httperr"
	"github.com/valleclinic/clinic-api/internal/models"
	"github.com/valleclinic/clinic-api/internal/timezone"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	id uint,
) (*dto.AppointmentListDTO, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	projection := toListDTO(ap)
	return &projection, nil
}

func toListDTO(ap *models.Appointment) dto.AppointmentListDTO {
	names := make([]string, 0, len(ap.Services))
	for _, svc := range ap.Services {
		names = append(names, svc.Name)
	}

	// a soft-deleted client no longer preloads
	fullName := ap.Client.FullName()
	if ap.Client.ID == 0 {
		fullName = "Cliente no disponible"
	}

	return dto.AppointmentListDTO{
		ID:              ap.ID,
		FullName:        fullName,
		AppointmentDate: timezone.FormatDay(ap.AppointmentDate),
		AppointmentTime: ap.AppointmentTime,
		Services:        strings.Join(names, ", "),
		ClientID:        ap.ClientID,
		Status:          ap.Status,
	}
}
