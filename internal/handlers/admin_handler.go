package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/vet-clinic/internal/dto"
	"github.com/BruksfildServices01/vet-clinic/internal/httpresp"
	"github.com/BruksfildServices01/vet-clinic/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/vet-clinic/internal/usecase/appointment"
)

type AdminHandler struct {
	list   *ucAppointment.ListAllAppointments
	status *ucAppointment.UpdateAppointmentStatus
	log    *logrus.Logger
}

func NewAdminHandler(
	list *ucAppointment.ListAllAppointments,
	status *ucAppointment.UpdateAppointmentStatus,
	log *logrus.Logger,
) *AdminHandler {
	return &AdminHandler{
		list:   list,
		status: status,
		log:    log,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdateStatusResponse struct {
	Message     string             `json:"message"`
	Appointment dto.AppointmentDTO `json:"appointment"`
}

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context())
	if err != nil {
		renderError(c, h.log, err)
		return
	}
	httpresp.List(c, out)
}

func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	appointmentID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	ap, err := h.status.Execute(
		c.Request.Context(),
		middleware.UserID(c),
		appointmentID,
		req.Status,
	)
	if err != nil {
		renderError(c, h.log, err)
		return
	}

	httpresp.OK(c, UpdateStatusResponse{
		Message:     "Appointment status updated successfully",
		Appointment: dto.NewAppointmentDTO(ap),
	})
}
