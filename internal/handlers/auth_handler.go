package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/vet-clinic/internal/auth"
	"github.com/BruksfildServices01/vet-clinic/internal/dto"
	"github.com/BruksfildServices01/vet-clinic/internal/httpresp"
	"github.com/BruksfildServices01/vet-clinic/internal/middleware"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
	ucUser "github.com/BruksfildServices01/vet-clinic/internal/usecase/user"
)

type AuthHandler struct {
	register *ucUser.Register
	login    *ucUser.Login

	issuer       *auth.TokenIssuer
	revoker      auth.Revoker
	cookieSecure bool
	log          *logrus.Logger
}

func NewAuthHandler(
	register *ucUser.Register,
	login *ucUser.Login,
	issuer *auth.TokenIssuer,
	revoker auth.Revoker,
	cookieSecure bool,
	log *logrus.Logger,
) *AuthHandler {
	return &AuthHandler{
		register:     register,
		login:        login,
		issuer:       issuer,
		revoker:      revoker,
		cookieSecure: cookieSecure,
		log:          log,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	dto.UserDTO
	Message string `json:"message"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	user, err := h.register.Execute(c.Request.Context(), ucUser.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		renderError(c, h.log, err)
		return
	}

	if !h.setSession(c, user) {
		return
	}

	httpresp.Created(c, RegisterResponse{
		UserDTO: dto.NewUserDTO(user),
		Message: "User registered successfully",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	user, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		renderError(c, h.log, err)
		return
	}

	if !h.setSession(c, user) {
		return
	}

	httpresp.OK(c, dto.NewUserDTO(user))
}

// Logout always succeeds. A valid credential is revoked until it expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	if raw := middleware.TokenFromRequest(c); raw != "" {
		if claims, err := h.issuer.Parse(raw); err == nil && claims.ExpiresAt != nil {
			if err := h.revoker.Revoke(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
				h.log.WithError(err).Warn("token revocation failed")
			}
		}
	}

	h.clearCookie(c)
	httpresp.Message(c, "Logged out successfully")
}

// --------- Cookie ---------

func (h *AuthHandler) setSession(c *gin.Context, user *models.User) bool {
	token, _, err := h.issuer.Issue(user)
	if err != nil {
		renderError(c, h.log, err)
		return false
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		auth.CookieName,
		token,
		int(h.issuer.TTL()/time.Second),
		"/",
		"",
		h.cookieSecure,
		true,
	)
	return true
}

func (h *AuthHandler) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", h.cookieSecure, true)
}
