package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/vet-clinic/internal/dto"
	"github.com/BruksfildServices01/vet-clinic/internal/httpresp"
	"github.com/BruksfildServices01/vet-clinic/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/vet-clinic/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create *ucAppointment.CreateAppointment
	list   *ucAppointment.ListMyAppointments
	cancel *ucAppointment.CancelAppointment
	log    *logrus.Logger
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	list *ucAppointment.ListMyAppointments,
	cancel *ucAppointment.CancelAppointment,
	log *logrus.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		create: create,
		list:   list,
		cancel: cancel,
		log:    log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PetID           flexUint `json:"pet_id"`
	VetID           flexUint `json:"vet_id"`
	AppointmentDate string   `json:"appointment_date"`
	Reason          string   `json:"reason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		OwnerID:         middleware.UserID(c),
		PetID:           uint(req.PetID),
		VetID:           uint(req.VetID),
		AppointmentDate: req.AppointmentDate,
		Reason:          req.Reason,
	})
	if err != nil {
		renderError(c, h.log, err)
		return
	}

	httpresp.Created(c, dto.NewAppointmentDTO(ap))
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		renderError(c, h.log, err)
		return
	}
	httpresp.List(c, out)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	appointmentID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), middleware.UserID(c), appointmentID); err != nil {
		renderError(c, h.log, err)
		return
	}

	httpresp.Message(c, "Appointment cancelled successfully")
}
