package user

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/vet-clinic/internal/auth"
	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/user"
	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
	"github.com/BruksfildServices01/vet-clinic/internal/validators"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type Register struct {
	repo        domain.Repository
	checkDomain func(email string) bool
}

// NewRegister builds the registration use case. When checkEmailDomain is
// set the email domain must resolve in DNS.
func NewRegister(repo domain.Repository, checkEmailDomain bool) *Register {
	uc := &Register{repo: repo}
	if checkEmailDomain {
		uc.checkDomain = validators.IsEmailDomainValid
	}
	return uc
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := validators.NormalizeEmail(in.Email)

	if username == "" || email == "" || in.Password == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}
	if !validators.IsEmailFormatValid(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}
	if len(in.Password) < auth.MinPasswordLength {
		return nil, httperr.ErrBusiness("password_too_short")
	}
	if uc.checkDomain != nil && !uc.checkDomain(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	exists, err := uc.repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("user_exists")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleClient,
	}

	// The unique indexes settle concurrent registrations.
	if err := uc.repo.Create(ctx, u); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("user_exists")
		}
		return nil, err
	}

	return u, nil
}
