package jobs

import (
	"log"
	"time"

	"github.com/internbridge/intern_bridge/database"
	"github.com/internbridge/intern_bridge/models"
)

// CloseExpiredInternships flips active listings to closed once their end
// date has passed. Listings with no end date stay open until the company
// closes them.
func CloseExpiredInternships() {
	log.Println("Running job: CloseExpiredInternships...")

	var expired []models.Internship
	err := database.DB.
		Where("status = ? AND ends_at IS NOT NULL AND ends_at < ?", "active", time.Now()).
		Find(&expired).Error
	if err != nil {
		log.Printf("Error checking for expired internships: %v", err)
		return
	}

	if len(expired) == 0 {
		log.Println("No expired internships found.")
		return
	}

	for _, internship := range expired {
		internship.Status = "closed"
		database.DB.Save(&internship)
	}

	log.Printf("Closed %d expired internship(s).", len(expired))
}
