package models

import (
	"time"

	"github.com/google/uuid"
)

type Certificate struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID uuid.UUID `gorm:"not null;index" json:"student_id"`

	EnrollmentID            *uuid.UUID `gorm:"unique" json:"enrollment_id,omitempty"`
	InternshipApplicationID *uuid.UUID `gorm:"unique" json:"internship_application_id,omitempty"`

	CertificateType   string    `gorm:"size:30;not null" json:"certificate_type"`
	CertificateNumber string    `gorm:"size:40;not null;unique" json:"certificate_number"`
	IssuedAt          time.Time `gorm:"not null" json:"issued_at"`
	DownloadURL       *string   `gorm:"type:text" json:"download_url,omitempty"`

	Student   User      `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
