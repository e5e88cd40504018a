package models

import (
	"time"

	"github.com/google/uuid"
)

type Internship struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID uuid.UUID `gorm:"not null;index" json:"company_id"`

	Title        string  `gorm:"size:255;not null" json:"title"`
	Stream       string  `gorm:"size:100;not null" json:"stream"`
	Duration     string  `gorm:"size:50;not null" json:"duration"`
	Positions    int     `gorm:"not null;default:1" json:"positions"`
	Description  string  `gorm:"type:text;not null" json:"description"`
	Requirements *string `gorm:"type:text" json:"requirements,omitempty"`

	Status string     `gorm:"size:20;not null;default:'draft'" json:"status"`
	EndsAt *time.Time `json:"ends_at,omitempty"`

	Company   User      `gorm:"foreignkey:CompanyID" json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
