package models

import (
	"time"

	"github.com/google/uuid"
)

type ContactSubmission struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Email    string    `gorm:"size:255;not null" json:"email"`
	Phone    *string   `gorm:"size:20" json:"phone,omitempty"`
	Category string    `gorm:"size:20;not null" json:"category"`
	Message  string    `gorm:"type:text;not null" json:"message"`

	// student enquiries
	PlacementSupport     *string `gorm:"size:50" json:"placement_support,omitempty"`
	IndustriesInterested *string `gorm:"type:text" json:"industries_interested,omitempty"`

	// company / institute enquiries
	CompanyName   *string `gorm:"size:255" json:"company_name,omitempty"`
	InstituteName *string `gorm:"size:255" json:"institute_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
