package pet

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/pet"
	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
	"github.com/BruksfildServices01/vet-clinic/internal/photos"
)

type UploadPetPhoto struct {
	repo  domain.Repository
	store photos.Store
}

// NewUploadPetPhoto accepts a nil store; uploads then fail with
// "photos_disabled".
func NewUploadPetPhoto(repo domain.Repository, store photos.Store) *UploadPetPhoto {
	return &UploadPetPhoto{
		repo:  repo,
		store: store,
	}
}

func (uc *UploadPetPhoto) Execute(
	ctx context.Context,
	ownerID uint,
	petID uint,
	upload io.Reader,
) (*models.Pet, error) {

	if uc.store == nil {
		return nil, httperr.ErrBusiness("photos_disabled")
	}

	// Check ownership before doing any image work.
	if _, err := uc.repo.GetOwned(ctx, petID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("pet_not_found")
		}
		return nil, err
	}

	body, err := photos.Process(upload)
	switch {
	case errors.Is(err, photos.ErrTooLarge):
		return nil, httperr.ErrBusiness("photo_too_large")
	case errors.Is(err, photos.ErrUnsupported):
		return nil, httperr.ErrBusiness("invalid_photo")
	case err != nil:
		return nil, err
	}

	key := fmt.Sprintf("pets/%d/%s.webp", petID, uuid.NewString())
	url, err := uc.store.Put(ctx, key, photos.ContentType, body)
	if err != nil {
		return nil, err
	}

	updated, err := uc.repo.SetPhotoURL(ctx, petID, ownerID, url)
	if err != nil {
		return nil, err
	}
	if !updated {
		// deleted while we were uploading
		return nil, httperr.ErrBusiness("pet_not_found")
	}

	return uc.repo.GetOwned(ctx, petID, ownerID)
}
