package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/vet-clinic/internal/auth"
	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/user"
	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
	"github.com/BruksfildServices01/vet-clinic/internal/validators"
)

type Login struct {
	repo domain.Repository
}

func NewLogin(repo domain.Repository) *Login {
	return &Login{repo: repo}
}

// Execute returns the same error for an unknown email and a wrong password.
func (uc *Login) Execute(ctx context.Context, email, password string) (*models.User, error) {
	email = validators.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	u, err := uc.repo.GetByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(password, u.PasswordHash) {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	u.Role = models.NormalizeRole(u.Role)
	return u, nil
}

type GetProfile struct {
	repo domain.Repository
}

func NewGetProfile(repo domain.Repository) *GetProfile {
	return &GetProfile{repo: repo}
}

func (uc *GetProfile) Execute(ctx context.Context, userID uint) (*models.User, error) {
	u, err := uc.repo.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("user_not_found")
	}
	if err != nil {
		return nil, err
	}
	u.Role = models.NormalizeRole(u.Role)
	return u, nil
}
