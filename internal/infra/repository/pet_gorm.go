package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/pet"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

type PetGormRepository struct {
	db *gorm.DB
}

func NewPetGormRepository(db *gorm.DB) *PetGormRepository {
	return &PetGormRepository{db: db}
}

func (r *PetGormRepository) Create(ctx context.Context, p *models.Pet) error {
	return r.db.WithContext(ctx).Omit("Owner").Create(p).Error
}

func (r *PetGormRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Pet, error) {
	var pets []models.Pet
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *PetGormRepository) GetOwned(ctx context.Context, petID, ownerID uint) (*models.Pet, error) {
	var p models.Pet
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", petID, ownerID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PetGormRepository) DeleteOwned(ctx context.Context, petID, ownerID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", petID, ownerID).
		Delete(&models.Pet{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *PetGormRepository) SetPhotoURL(ctx context.Context, petID, ownerID uint, url string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Pet{}).
		Where("id = ? AND owner_id = ?", petID, ownerID).
		Update("photo_url", url)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

var _ domain.Repository = (*PetGormRepository)(nil)
