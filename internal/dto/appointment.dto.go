package dto

import (
	"github.com/BruksfildServices01/vet-clinic/internal/models"
	"github.com/BruksfildServices01/vet-clinic/internal/timezone"
)

type AppointmentDTO struct {
	ID              uint   `json:"id"`
	PetID           uint   `json:"pet_id"`
	VetID           uint   `json:"vet_id"`
	AppointmentDate string `json:"appointment_date"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

func NewAppointmentDTO(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:              ap.ID,
		PetID:           ap.PetID,
		VetID:           ap.VetID,
		AppointmentDate: timezone.FormatISO(ap.AppointmentDate),
		Reason:          ap.Reason,
		Status:          ap.Status,
		CreatedAt:       timezone.FormatISO(ap.CreatedAt),
	}
}

type AppointmentListDTO struct {
	ID              uint   `json:"id"`
	PetID           uint   `json:"pet_id"`
	VetID           uint   `json:"vet_id"`
	AppointmentDate string `json:"appointment_date"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`
	PetName         string `json:"pet_name"`
	VetName         string `json:"vet_name"`
}

type AdminAppointmentListDTO struct {
	AppointmentListDTO
	OwnerName string `json:"owner_name"`
}
