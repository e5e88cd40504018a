package jobs

import (
	"log"
	"time"

	"github.com/internbridge/intern_bridge/database"
	"github.com/internbridge/intern_bridge/models"
)

const pendingPaymentTTL = 7 * 24 * time.Hour

// ExpireStalePendingEnrollments cancels enrollments that sat in
// pending_payment for longer than a week.
func ExpireStalePendingEnrollments() {
	log.Println("Running job: ExpireStalePendingEnrollments...")

	cutoff := time.Now().Add(-pendingPaymentTTL)

	var stale []models.Enrollment
	err := database.DB.
		Where("status = ? AND enrolled_at < ?", "pending_payment", cutoff).
		Find(&stale).Error
	if err != nil {
		log.Printf("Error checking for stale enrollments: %v", err)
		return
	}

	if len(stale) == 0 {
		log.Println("No stale pending enrollments found.")
		return
	}

	for _, enrollment := range stale {
		enrollment.Status = "cancelled"
		database.DB.Save(&enrollment)
	}

	log.Printf("Cancelled %d stale pending enrollment(s).", len(stale))
}
