package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/vet-clinic/internal/events"
	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
	"github.com/BruksfildServices01/vet-clinic/internal/metrics"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

type UpdateAppointmentStatus struct {
	repo   domain.Repository
	events *events.Dispatcher
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	events *events.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:   repo,
		events: events,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
	status string,
) (*models.Appointment, error) {

	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	changed, err := uc.repo.Transition(
		ctx,
		appointmentID,
		to,
		domain.AllowedFrom(domain.ActorAdmin, to),
	)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	metrics.AppointmentStatusChanged(string(to))
	uc.events.Dispatch(events.Event{
		Type:          events.AppointmentStatusChanged,
		AppointmentID: appointmentID,
		ActorID:       adminID,
		Status:        string(to),
	})

	return uc.repo.GetByID(ctx, appointmentID)
}
