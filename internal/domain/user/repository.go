package user

import (
	"context"

	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

type Repository interface {
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	Create(ctx context.Context, u *models.User) error

	GetByEmail(ctx context.Context, email string) (*models.User, error)

	GetByID(ctx context.Context, id uint) (*models.User, error)
}
