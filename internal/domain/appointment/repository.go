package appointment

import (
	"context"

	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

type Repository interface {
	// -------- Create --------

	// CreateForOwner inserts ap only if ap.PetID belongs to ownerID. It
	// returns business error "pet_not_owned" otherwise.
	CreateForOwner(
		ctx context.Context,
		ownerID uint,
		ap *models.Appointment,
	) error

	// -------- Read --------
	GetByID(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	GetForOwner(
		ctx context.Context,
		appointmentID uint,
		ownerID uint,
	) (*models.Appointment, error)

	ListForOwner(
		ctx context.Context,
		ownerID uint,
	) ([]ListRow, error)

	ListAll(
		ctx context.Context,
	) ([]ListRow, error)

	// -------- State change --------

	// TransitionForOwner sets the status to `to` when the appointment belongs
	// to ownerID and its current status is one of `from`. It reports whether
	// a row changed.
	TransitionForOwner(
		ctx context.Context,
		appointmentID uint,
		ownerID uint,
		to Status,
		from []Status,
	) (bool, error)

	Transition(
		ctx context.Context,
		appointmentID uint,
		to Status,
		from []Status,
	) (bool, error)
}
