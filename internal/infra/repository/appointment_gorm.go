package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateForOwner(
	ctx context.Context,
	ownerID uint,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pet models.Pet
		err := tx.
			Select("id").
			Where("id = ? AND owner_id = ?", ap.PetID, ownerID).
			First(&pet).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("pet_not_owned")
		}
		if err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(ap).Error; err != nil {
			if httperr.IsForeignKeyViolation(err) {
				return httperr.ErrBusiness("vet_not_found")
			}
			return err
		}
		return nil
	})
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetForOwner(
	ctx context.Context,
	appointmentID uint,
	ownerID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND pet_id IN (?)", appointmentID, ownedPetIDs(r.db, ownerID)).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListForOwner(
	ctx context.Context,
	ownerID uint,
) ([]domain.ListRow, error) {

	var rows []domain.ListRow
	err := r.db.WithContext(ctx).
		Table("appointments AS a").
		Select(`a.id, a.pet_id, a.vet_id, a.appointment_date, a.reason, a.status,
			p.name AS pet_name, v.name AS vet_name`).
		Joins("JOIN pets p ON p.id = a.pet_id").
		Joins("JOIN vets v ON v.id = a.vet_id").
		Where("p.owner_id = ?", ownerID).
		Order("a.appointment_date DESC, a.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AppointmentGormRepository) ListAll(
	ctx context.Context,
) ([]domain.ListRow, error) {

	var rows []domain.ListRow
	err := r.db.WithContext(ctx).
		Table("appointments AS a").
		Select(`a.id, a.pet_id, a.vet_id, a.appointment_date, a.reason, a.status,
			p.name AS pet_name, v.name AS vet_name, u.username AS owner_name`).
		Joins("JOIN pets p ON p.id = a.pet_id").
		Joins("JOIN users u ON u.id = p.owner_id").
		Joins("JOIN vets v ON v.id = a.vet_id").
		Order("a.appointment_date DESC, a.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// State change (single conditional UPDATE, no read-then-write)
// --------------------------------------------------

func (r *AppointmentGormRepository) TransitionForOwner(
	ctx context.Context,
	appointmentID uint,
	ownerID uint,
	to domain.Status,
	from []domain.Status,
) (bool, error) {

	if len(from) == 0 {
		return false, nil
	}

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status IN ? AND pet_id IN (?)",
			appointmentID, statusStrings(from), ownedPetIDs(r.db, ownerID)).
		Update("status", string(to))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *AppointmentGormRepository) Transition(
	ctx context.Context,
	appointmentID uint,
	to domain.Status,
	from []domain.Status,
) (bool, error) {

	if len(from) == 0 {
		return false, nil
	}

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status IN ?", appointmentID, statusStrings(from)).
		Update("status", string(to))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ownedPetIDs is a subquery over every pet ever owned by ownerID, deleted
// ones included, so history stays reachable.
func ownedPetIDs(db *gorm.DB, ownerID uint) *gorm.DB {
	return db.Unscoped().
		Model(&models.Pet{}).
		Select("id").
		Where("owner_id = ?", ownerID)
}

func statusStrings(in []domain.Status) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
