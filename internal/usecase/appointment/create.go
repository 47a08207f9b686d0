package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/vet-clinic/internal/events"
	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
	"github.com/BruksfildServices01/vet-clinic/internal/metrics"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
	"github.com/BruksfildServices01/vet-clinic/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	OwnerID uint

	PetID uint
	VetID uint

	AppointmentDate string
	Reason          string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	events *events.Dispatcher
	loc    *time.Location
	now    func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	events *events.Dispatcher,
	loc *time.Location,
) *CreateAppointment {
	if loc == nil {
		loc = time.UTC
	}
	return &CreateAppointment{
		repo:   repo,
		events: events,
		loc:    loc,
		now:    time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Required fields
	// --------------------------------------------------
	if in.PetID == 0 || in.VetID == 0 || strings.TrimSpace(in.AppointmentDate) == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	// --------------------------------------------------
	// 2. Date, strictly in the future
	// --------------------------------------------------
	at, err := timezone.ParseISO(in.AppointmentDate, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !at.After(uc.now()) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	// --------------------------------------------------
	// 3. Insert (ownership checked in the same transaction)
	// --------------------------------------------------
	ap := &models.Appointment{
		PetID:           in.PetID,
		VetID:           in.VetID,
		AppointmentDate: at,
		Reason:          strings.TrimSpace(in.Reason),
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateForOwner(ctx, in.OwnerID, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Notify
	// --------------------------------------------------
	metrics.AppointmentBooked()
	uc.events.Dispatch(events.Event{
		Type:          events.AppointmentBooked,
		AppointmentID: ap.ID,
		ActorID:       in.OwnerID,
		Status:        ap.Status,
	})

	return ap, nil
}
