package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/vet-clinic/internal/auth"
	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
)

const (
	ContextUserID      = "userID"
	ContextUserEmail   = "userEmail"
	ContextUserRole    = "userRole"
	ContextTokenID     = "tokenID"
	ContextTokenExpiry = "tokenExpiry"
)

// AuthMiddleware reads the credential from the "token" cookie, falling back
// to an Authorization: Bearer header for API clients.
func AuthMiddleware(issuer *auth.TokenIssuer, revoker auth.Revoker, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := TokenFromRequest(c)
		if tokenString == "" {
			httperr.Abort(c, http.StatusUnauthorized, "unauthenticated", "authentication required")
			return
		}

		claims, err := issuer.Parse(tokenString)
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "invalid or expired token")
			return
		}

		revoked, err := revoker.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			log.WithError(err).Error("token revocation lookup failed")
			httperr.Abort(c, http.StatusInternalServerError, "internal_error", "internal server error")
			return
		}
		if revoked {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "invalid or expired token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(ContextTokenExpiry, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// TokenFromRequest returns the raw credential, or "" when none was sent.
func TokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(auth.CookieName); err == nil && cookie != "" {
		return cookie
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func UserID(c *gin.Context) uint {
	return c.GetUint(ContextUserID)
}

func UserEmail(c *gin.Context) string {
	return c.GetString(ContextUserEmail)
}

func UserRole(c *gin.Context) string {
	return c.GetString(ContextUserRole)
}

func TokenID(c *gin.Context) string {
	return c.GetString(ContextTokenID)
}

func TokenExpiry(c *gin.Context) time.Time {
	return c.GetTime(ContextTokenExpiry)
}
