package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/vet-clinic/internal/dto"
	"github.com/BruksfildServices01/vet-clinic/internal/timezone"
)

// ListMyAppointments returns the caller's appointments, newest date first.
type ListMyAppointments struct {
	repo domain.Repository
}

func NewListMyAppointments(repo domain.Repository) *ListMyAppointments {
	return &ListMyAppointments{repo: repo}
}

func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	ownerID uint,
) ([]dto.AppointmentListDTO, error) {

	rows, err := uc.repo.ListForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, toListDTO(r))
	}
	return out, nil
}

// ListAllAppointments is the admin view over every owner.
type ListAllAppointments struct {
	repo domain.Repository
}

func NewListAllAppointments(repo domain.Repository) *ListAllAppointments {
	return &ListAllAppointments{repo: repo}
}

func (uc *ListAllAppointments) Execute(
	ctx context.Context,
) ([]dto.AdminAppointmentListDTO, error) {

	rows, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AdminAppointmentListDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AdminAppointmentListDTO{
			AppointmentListDTO: toListDTO(r),
			OwnerName:          r.OwnerName,
		})
	}
	return out, nil
}

func toListDTO(r domain.ListRow) dto.AppointmentListDTO {
	return dto.AppointmentListDTO{
		ID:              r.ID,
		PetID:           r.PetID,
		VetID:           r.VetID,
		AppointmentDate: timezone.FormatISO(r.AppointmentDate),
		Reason:          r.Reason,
		Status:          r.Status,
		PetName:         r.PetName,
		VetName:         r.VetName,
	}
}
