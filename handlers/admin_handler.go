package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/internbridge/intern_bridge/database"
	"github.com/internbridge/intern_bridge/models"
	"github.com/internbridge/intern_bridge/notifications"
	"github.com/internbridge/intern_bridge/services"
	"github.com/internbridge/intern_bridge/websocket"
	"gorm.io/gorm"
)

type MonthBucket struct {
	Month       string `json:"month"`
	Enrollments int64  `json:"enrollments"`
	Completions int64  `json:"completions"`
}

type DashboardAnalyticsResponse struct {
	TotalStudents     int64 `json:"total_students"`
	TotalCompanies    int64 `json:"total_companies"`
	TotalInstitutes   int64 `json:"total_institutes"`
	TotalEnrollments  int64 `json:"total_enrollments"`
	ActiveEnrollments int64 `json:"active_enrollments"`
	TotalInternships  int64 `json:"total_internships"`
	ActiveInternships int64 `json:"active_internships"`
	TotalApplications int64 `json:"total_applications"`
	TotalCertificates int64 `json:"total_certificates"`

	MonthlyActivity []MonthBucket    `json:"monthly_activity"`
	StreamBreakdown map[string]int64 `json:"stream_breakdown"`
}

// GetDashboardAnalytics aggregates the admin dashboard counters. Plain
// linear scans; fine at this platform's data volumes.
func GetDashboardAnalytics(c *fiber.Ctx) error {
	var response DashboardAnalyticsResponse

	database.DB.Model(&models.User{}).Where("role = ?", "student").Count(&response.TotalStudents)
	database.DB.Model(&models.User{}).Where("role = ?", "company").Count(&response.TotalCompanies)
	database.DB.Model(&models.User{}).Where("role = ?", "institute").Count(&response.TotalInstitutes)

	database.DB.Model(&models.Enrollment{}).Count(&response.TotalEnrollments)
	database.DB.Model(&models.Enrollment{}).Where("status = ?", "active").Count(&response.ActiveEnrollments)

	database.DB.Model(&models.Internship{}).Count(&response.TotalInternships)
	database.DB.Model(&models.Internship{}).Where("status = ?", "active").Count(&response.ActiveInternships)

	database.DB.Model(&models.InternshipApplication{}).Count(&response.TotalApplications)
	database.DB.Model(&models.Certificate{}).Count(&response.TotalCertificates)

	// rolling six calendar months, oldest first
	now := time.Now()
	response.MonthlyActivity = make([]MonthBucket, 0, 6)
	for i := 5; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		bucket := MonthBucket{Month: monthStart.Format("2006-01")}
		database.DB.Model(&models.Enrollment{}).
			Where("enrolled_at >= ? AND enrolled_at < ?", monthStart, monthEnd).
			Count(&bucket.Enrollments)
		database.DB.Model(&models.Enrollment{}).
			Where("completed_at >= ? AND completed_at < ?", monthStart, monthEnd).
			Count(&bucket.Completions)
		response.MonthlyActivity = append(response.MonthlyActivity, bucket)
	}

	response.StreamBreakdown = make(map[string]int64, len(models.StreamLabels))
	for stream := range models.StreamLabels {
		var count int64
		database.DB.Model(&models.Enrollment{}).Where("stream = ?", stream).Count(&count)
		response.StreamBreakdown[stream] = count
	}

	return c.JSON(response)
}

func GetAllUsers(c *fiber.Ctx) error {
	query := database.DB.Order("created_at desc")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load users"})
	}
	return c.JSON(users)
}

func ToggleUserStatus(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.Where("id = ?", c.Params("userId")).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.IsActive = !user.IsActive
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(fiber.Map{"message": "User status updated", "is_active": user.IsActive})
}

// SetInstituteVerification overwrites the institute's verification status.
// No transition guard and no history: an approved institute can be rejected
// again by the same call.
func SetInstituteVerification(c *fiber.Ctx) error {
	type Request struct {
		Decision string `json:"decision" validate:"required,oneof=approved rejected"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var institute models.User
	if err := database.DB.Where("id = ? AND role = ?", c.Params("userId"), "institute").First(&institute).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Institute not found"})
	}

	institute.VerificationStatus = &req.Decision
	if err := database.DB.Save(&institute).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update verification status"})
	}

	go notifications.SendEmail(institute.FullName, institute.Email, "Verification Update",
		"<h1>Verification Update</h1><p>Your institute verification status is now <strong>"+req.Decision+"</strong>.</p>")

	return c.JSON(institute)
}

func ListEnrollments(c *fiber.Ctx) error {
	query := database.DB.Preload("Student").Order("enrolled_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var enrollments []models.Enrollment
	if err := query.Find(&enrollments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load enrollments"})
	}
	return c.JSON(enrollments)
}

// advanceEnrollment moves an enrollment between two exact statuses and
// notifies the student. Used by the three admin transitions below.
func advanceEnrollment(c *fiber.Ctx, from, to string) error {
	var enrollment models.Enrollment
	if err := database.DB.Where("id = ?", c.Params("enrollmentId")).First(&enrollment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}

	if enrollment.Status != from {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Enrollment is not in status " + from})
	}

	// confirming payment takes the student's single enrollment slot; a
	// student can hold several pending_payment rows, so another one may
	// have been locked since this one was created
	if models.EnrollmentAcquiresLock(enrollment.Status, to) {
		var otherLocked int64
		err := database.DB.Model(&models.Enrollment{}).
			Where("student_id = ? AND id <> ? AND status NOT IN ?", enrollment.StudentID, enrollment.ID, models.UnlockedEnrollmentStatuses).
			Count(&otherLocked).Error
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update enrollment"})
		}
		if otherLocked > 0 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Student already has an active enrollment"})
		}
	}

	enrollment.Status = to
	now := time.Now()
	switch to {
	case "active":
		enrollment.ApprovedAt = &now
	case "completed":
		enrollment.CompletedAt = &now
	}

	if err := database.DB.Save(&enrollment).Error; err != nil {
		// the partial unique index rejects a second locked enrollment
		// even when two confirmations race past the count above
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Student already has an active enrollment"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update enrollment"})
	}

	var student models.User
	if err := database.DB.Where("id = ?", enrollment.StudentID).First(&student).Error; err == nil {
		websocket.NotifyStatusChange(student.ID, "enrollment", enrollment.ID, enrollment.Status)
		notifications.SendEnrollmentStatusEmail(student.FullName, student.Email, models.StreamLabels[enrollment.Stream], enrollment.Status)
	}

	if to == "completed" {
		go services.IssueTrainingCertificate(enrollment)
	}

	return c.JSON(enrollment)
}

// ConfirmEnrollmentPayment records that the enrollment fee arrived.
func ConfirmEnrollmentPayment(c *fiber.Ctx) error {
	return advanceEnrollment(c, "pending_payment", "pending_approval")
}

func ApproveEnrollment(c *fiber.Ctx) error {
	return advanceEnrollment(c, "pending_approval", "active")
}

func CompleteEnrollment(c *fiber.Ctx) error {
	return advanceEnrollment(c, "active", "completed")
}
