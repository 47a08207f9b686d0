package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/vet-clinic/internal/events"
	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
	"github.com/BruksfildServices01/vet-clinic/internal/metrics"
)

type CancelAppointment struct {
	repo   domain.Repository
	events *events.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	events *events.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:   repo,
		events: events,
	}
}

// Execute cancels an appointment on behalf of the owner of its pet.
// Appointments of other owners are reported as not found.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	ownerID uint,
	appointmentID uint,
) error {

	changed, err := uc.repo.TransitionForOwner(
		ctx,
		appointmentID,
		ownerID,
		domain.StatusCancelled,
		domain.AllowedFrom(domain.ActorOwner, domain.StatusCancelled),
	)
	if err != nil {
		return err
	}

	if !changed {
		// Either not ours or no longer cancellable.
		_, err := uc.repo.GetForOwner(ctx, appointmentID, ownerID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("appointment_not_found")
		}
		if err != nil {
			return err
		}
		return httperr.ErrBusiness("invalid_state")
	}

	metrics.AppointmentStatusChanged(string(domain.StatusCancelled))
	uc.events.Dispatch(events.Event{
		Type:          events.AppointmentCancelled,
		AppointmentID: appointmentID,
		ActorID:       ownerID,
		Status:        string(domain.StatusCancelled),
	})

	return nil
}
