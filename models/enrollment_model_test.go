package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCancelOnlyWhileAwaitingPayment(t *testing.T) {
	assert.True(t, CanCancelEnrollment("pending_payment"))

	for _, status := range []string{"pending_approval", "active", "completed", "cancelled"} {
		assert.False(t, CanCancelEnrollment(status), "%s should not be cancellable", status)
	}
}

func TestEnrollmentStatusLocks(t *testing.T) {
	for _, status := range []string{"pending_approval", "active", "completed"} {
		assert.True(t, EnrollmentStatusLocks(status), "%s should lock the student", status)
	}

	assert.False(t, EnrollmentStatusLocks("pending_payment"))
	assert.False(t, EnrollmentStatusLocks("cancelled"))
}

func TestEnrollmentLocked(t *testing.T) {
	locked := Enrollment{Status: "active"}
	assert.True(t, locked.Locked())

	awaitingPayment := Enrollment{Status: "pending_payment"}
	assert.False(t, awaitingPayment.Locked())

	cancelled := Enrollment{Status: "cancelled"}
	assert.False(t, cancelled.Locked())
}

func TestEnrollmentAcquiresLock(t *testing.T) {
	// confirming payment is the moment the student's single slot is taken,
	// so it is the transition that must re-check for another locked row
	assert.True(t, EnrollmentAcquiresLock("pending_payment", "pending_approval"))

	// later transitions stay within the already-locked slot
	assert.False(t, EnrollmentAcquiresLock("pending_approval", "active"))
	assert.False(t, EnrollmentAcquiresLock("active", "completed"))

	// cancelling never takes the slot
	assert.False(t, EnrollmentAcquiresLock("pending_payment", "cancelled"))
}
