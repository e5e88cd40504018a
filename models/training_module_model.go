package models

import (
	"time"

	"github.com/google/uuid"
)

type TrainingModule struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Stream    string    `gorm:"size:50;not null;index" json:"stream"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
}

type ModuleProgress struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EnrollmentID uuid.UUID `gorm:"not null;index" json:"enrollment_id"`
	ModuleID     uuid.UUID `gorm:"not null" json:"module_id"`

	ProgressPercentage int  `gorm:"not null;default:0" json:"progress_percentage"`
	Completed          bool `gorm:"default:false" json:"completed"`

	Module    TrainingModule `gorm:"foreignkey:ModuleID" json:"module,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
