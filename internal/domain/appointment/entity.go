package appointment

import "time"

// ListRow is one appointment joined with the names shown in lists.
// OwnerName is only filled for the admin listing.
type ListRow struct {
	ID              uint
	PetID           uint
	VetID           uint
	AppointmentDate time.Time
	Reason          string
	Status          string
	PetName         string
	VetName         string
	OwnerName       string
}
