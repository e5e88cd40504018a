package models

import (
	"time"

	"github.com/google/uuid"
)

type Enrollment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID uuid.UUID `gorm:"not null;index" json:"student_id"`
	Stream    string    `gorm:"size:50;not null" json:"stream"`
	Status    string    `gorm:"size:20;not null;default:'pending_payment'" json:"status"`

	EnrolledAt  time.Time  `gorm:"not null" json:"enrolled_at"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	InstituteID             *uuid.UUID `json:"institute_id,omitempty"`
	InstituteApprovalStatus string     `gorm:"size:20;not null;default:'pending'" json:"institute_approval_status"`

	Student   User      `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UnlockedEnrollmentStatuses are the statuses that do not bind a student
// to a stream. Everything else counts as locked, and a student may hold at
// most one locked enrollment; a partial unique index on enrollments backs
// this in the database.
var UnlockedEnrollmentStatuses = []string{"cancelled", "pending_payment"}

func EnrollmentStatusLocks(status string) bool {
	for _, s := range UnlockedEnrollmentStatuses {
		if status == s {
			return false
		}
	}
	return true
}

// Locked reports whether this enrollment binds the student to a stream.
// A cancelled row or one still waiting on payment does not.
func (e *Enrollment) Locked() bool {
	return EnrollmentStatusLocks(e.Status)
}

// EnrollmentAcquiresLock reports whether moving between the two statuses
// takes the student's single enrollment slot. Callers must re-check for an
// existing locked enrollment before such a transition: several rows may sit
// in pending_payment at once, and confirming payment on a second one while
// another is already locked would break the one-locked-enrollment rule.
func EnrollmentAcquiresLock(from, to string) bool {
	return !EnrollmentStatusLocks(from) && EnrollmentStatusLocks(to)
}

// CanCancelEnrollment: a student may only cancel while the enrollment is
// still waiting on payment.
func CanCancelEnrollment(status string) bool {
	return status == "pending_payment"
}
