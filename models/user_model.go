package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'student'" json:"role"`
	Phone    *string   `gorm:"size:20" json:"phone"`

	// student fields
	InstitutionName *string    `gorm:"size:255" json:"institution_name,omitempty"`
	CourseName      *string    `gorm:"size:255" json:"course_name,omitempty"`
	GraduationYear  *int       `json:"graduation_year,omitempty"`
	InstituteID     *uuid.UUID `json:"institute_id,omitempty"`

	// institute fields
	InstituteName      *string `gorm:"size:255" json:"institute_name,omitempty"`
	VerificationStatus *string `gorm:"size:20" json:"verification_status,omitempty"`

	// company fields
	CompanyName *string `gorm:"size:255" json:"company_name,omitempty"`
	CompanySize *string `gorm:"size:50" json:"company_size,omitempty"`
	Industry    *string `gorm:"size:100" json:"industry,omitempty"`

	ProfilePictureURL *string `gorm:"size:255" json:"profile_picture_url"`

	ResetPasswordToken          *string    `gorm:"size:255;unique" json:"-"`
	ResetPasswordTokenExpiresAt *time.Time `json:"-"`
	IsActive                    bool       `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
