package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/vet-clinic/internal/dto"
	"github.com/BruksfildServices01/vet-clinic/internal/httpresp"
	"github.com/BruksfildServices01/vet-clinic/internal/middleware"
	ucUser "github.com/BruksfildServices01/vet-clinic/internal/usecase/user"
)

type MeHandler struct {
	profile *ucUser.GetProfile
	log     *logrus.Logger
}

func NewMeHandler(profile *ucUser.GetProfile, log *logrus.Logger) *MeHandler {
	return &MeHandler{profile: profile, log: log}
}

type sessionUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type CheckAuthResponse struct {
	Authenticated bool        `json:"authenticated"`
	User          sessionUser `json:"user"`
}

func (h *MeHandler) Profile(c *gin.Context) {
	user, err := h.profile.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		renderError(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.NewUserDTO(user))
}

// CheckAuth answers from the verified credential alone.
func (h *MeHandler) CheckAuth(c *gin.Context) {
	httpresp.OK(c, CheckAuthResponse{
		Authenticated: true,
		User: sessionUser{
			ID:    middleware.UserID(c),
			Email: middleware.UserEmail(c),
			Role:  middleware.UserRole(c),
		},
	})
}
