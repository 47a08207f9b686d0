package pet

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/pet"
	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

// ======================================================
// CREATE
// ======================================================

type CreatePetInput struct {
	OwnerID uint

	Name    string
	Species string
	Breed   *string
	Age     *int
}

type CreatePet struct {
	repo domain.Repository
}

func NewCreatePet(repo domain.Repository) *CreatePet {
	return &CreatePet{repo: repo}
}

func (uc *CreatePet) Execute(ctx context.Context, in CreatePetInput) (*models.Pet, error) {
	name := strings.TrimSpace(in.Name)
	species := strings.TrimSpace(in.Species)
	if name == "" || species == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}
	if in.Age != nil && *in.Age < 0 {
		return nil, httperr.ErrBusiness("invalid_age")
	}

	var breed *string
	if in.Breed != nil {
		if b := strings.TrimSpace(*in.Breed); b != "" {
			breed = &b
		}
	}

	p := &models.Pet{
		OwnerID: in.OwnerID,
		Name:    name,
		Species: species,
		Breed:   breed,
		Age:     in.Age,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ======================================================
// LIST
// ======================================================

type ListPets struct {
	repo domain.Repository
}

func NewListPets(repo domain.Repository) *ListPets {
	return &ListPets{repo: repo}
}

func (uc *ListPets) Execute(ctx context.Context, ownerID uint) ([]models.Pet, error) {
	pets, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if pets == nil {
		pets = []models.Pet{}
	}
	return pets, nil
}

// ======================================================
// DELETE
// ======================================================

type DeletePet struct {
	repo domain.Repository
}

func NewDeletePet(repo domain.Repository) *DeletePet {
	return &DeletePet{repo: repo}
}

// Execute deletes the pet if ownerID owns it. Pets of other owners are
// reported as not found.
func (uc *DeletePet) Execute(ctx context.Context, ownerID, petID uint) error {
	deleted, err := uc.repo.DeleteOwned(ctx, petID, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.ErrBusiness("pet_not_found")
	}
	return nil
}
