package dto

import (
	"github.com/BruksfildServices01/vet-clinic/internal/models"
	"github.com/BruksfildServices01/vet-clinic/internal/timezone"
)

// UserDTO is the public shape of a user. The password hash never leaves
// the server.
type UserDTO struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

func NewUserDTO(u *models.User) UserDTO {
	out := UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     models.NormalizeRole(u.Role),
	}
	if !u.CreatedAt.IsZero() {
		out.CreatedAt = timezone.FormatISO(u.CreatedAt)
	}
	return out
}
