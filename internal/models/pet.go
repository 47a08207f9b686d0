package models

import (
	"time"

	"gorm.io/gorm"
)

type Pet struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint `gorm:"not null;index" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name     string  `gorm:"size:100;not null" json:"name"`
	Species  string  `gorm:"size:50;not null" json:"species"`
	Breed    *string `gorm:"size:100" json:"breed"`
	Age      *int    `json:"age"`
	PhotoURL string  `gorm:"size:255" json:"photo_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Deleted pets keep their appointment history readable.
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
