package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
	"github.com/BruksfildServices01/vet-clinic/internal/middleware"
)

type businessStatus struct {
	status  int
	message string
}

// businessErrors maps use case error codes to their HTTP rendering.
var businessErrors = map[string]businessStatus{
	// validation
	"missing_fields":       {http.StatusBadRequest, "Required fields are missing."},
	"invalid_email":        {http.StatusBadRequest, "Invalid email address."},
	"invalid_email_domain": {http.StatusBadRequest, "The email domain does not look valid."},
	"password_too_short":   {http.StatusBadRequest, "Password must be at least 6 characters."},
	"user_exists":          {http.StatusBadRequest, "Username or email already registered."},
	"invalid_age":          {http.StatusBadRequest, "Age cannot be negative."},
	"invalid_date":         {http.StatusBadRequest, "Invalid appointment date."},
	"date_in_past":         {http.StatusBadRequest, "Appointment date must be in the future."},
	"vet_not_found":        {http.StatusBadRequest, "Veterinarian not found."},
	"invalid_status":       {http.StatusBadRequest, "Invalid status."},
	"invalid_state":        {http.StatusBadRequest, "Appointment cannot be changed in its current status."},
	"invalid_photo":        {http.StatusBadRequest, "Photo must be a JPEG, PNG or GIF image."},
	"photo_too_large":      {http.StatusRequestEntityTooLarge, "Photo is too large."},

	// authentication / authorization
	"invalid_credentials": {http.StatusUnauthorized, "Invalid email or password."},
	"pet_not_owned":       {http.StatusForbidden, "Pet does not belong to you."},

	// not found
	"pet_not_found":         {http.StatusNotFound, "Pet not found."},
	"appointment_not_found": {http.StatusNotFound, "Appointment not found."},
	"user_not_found":        {http.StatusNotFound, "User not found."},

	"photos_disabled": {http.StatusServiceUnavailable, "Photo storage is not configured."},
}

// renderError writes a business error with its mapped status. Anything else
// is logged and reported as a generic 500.
func renderError(c *gin.Context, log *logrus.Logger, err error) {
	if code, ok := httperr.Code(err); ok {
		if bs, known := businessErrors[code]; known {
			httperr.Write(c, bs.status, code, bs.message)
			return
		}
		httperr.BadRequest(c, code, code)
		return
	}

	log.WithError(err).
		WithField("path", c.FullPath()).
		WithField("request_id", c.GetString(middleware.ContextRequestID)).
		Error("request failed")
	httperr.Internal(c, "internal_error", "Internal server error.")
}

func invalidRequest(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", "Invalid request body.")
}

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}
