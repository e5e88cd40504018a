package models

import (
	"time"

	"github.com/google/uuid"
)

type InternshipApplication struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID    uuid.UUID `gorm:"not null;index" json:"student_id"`
	InternshipID uuid.UUID `gorm:"not null;index" json:"internship_id"`

	Status      string     `gorm:"size:30;not null;default:'suggested'" json:"status"`
	SuggestedAt time.Time  `gorm:"not null" json:"suggested_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Notes       *string    `gorm:"type:text" json:"notes,omitempty"`

	Student    User       `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Internship Internship `gorm:"foreignkey:InternshipID" json:"internship,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// applicationFlow lists the legal forward transition from each state.
// rejected is reachable from every non-terminal state and handled below.
var applicationFlow = map[string]string{
	"suggested":          "institute_approved",
	"institute_approved": "admin_approved",
	"admin_approved":     "active",
	"active":             "completed",
}

func CanTransitionApplication(from, to string) bool {
	if to == "rejected" {
		return from != "completed" && from != "rejected"
	}
	return applicationFlow[from] == to
}
