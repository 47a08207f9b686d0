package db

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/vet-clinic/internal/auth"
	"github.com/BruksfildServices01/vet-clinic/internal/config"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
	"github.com/BruksfildServices01/vet-clinic/internal/validators"
)

var DefaultVets = []models.Vet{
	{
		Name:           "Dr. Sarah Johnson",
		Specialization: "Small Animals, Surgery",
		AvailableDays:  "Monday,Tuesday,Wednesday,Thursday",
		AvailableHours: "09:00-17:00",
	},
	{
		Name:           "Dr. Michael Chen",
		Specialization: "Exotic Pets, Internal Medicine",
		AvailableDays:  "Wednesday,Thursday,Friday",
		AvailableHours: "10:00-18:00",
	},
}

// SeedVets inserts the default veterinarians once, when the table is empty.
func SeedVets(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Vet{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	vets := make([]models.Vet, len(DefaultVets))
	copy(vets, DefaultVets)

	return db.Create(&vets).Error
}

// SeedAdmin creates the configured administrator if no user owns that email.
func SeedAdmin(db *gorm.DB, seed config.AdminSeed) error {
	email := validators.NormalizeEmail(seed.Email)
	if email == "" || seed.Password == "" {
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(seed.Password)
	if err != nil {
		return err
	}

	username := seed.Username
	if username == "" {
		username = "admin"
	}

	return db.Create(&models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Role:         models.RoleAdmin,
	}).Error
}
