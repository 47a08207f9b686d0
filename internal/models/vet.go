package models

type Vet struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name           string `gorm:"size:100;not null" json:"name"`
	Specialization string `gorm:"size:255" json:"specialization"`
	AvailableDays  string `gorm:"size:100" json:"available_days"`
	AvailableHours string `gorm:"size:50" json:"available_hours"`
}
