package pet

import (
	"context"

	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Pet) error

	ListByOwner(ctx context.Context, ownerID uint) ([]models.Pet, error)

	GetOwned(ctx context.Context, petID, ownerID uint) (*models.Pet, error)

	// DeleteOwned removes the pet only when ownerID owns it and reports
	// whether a row was affected.
	DeleteOwned(ctx context.Context, petID, ownerID uint) (bool, error)

	SetPhotoURL(ctx context.Context, petID, ownerID uint, url string) (bool, error)
}
