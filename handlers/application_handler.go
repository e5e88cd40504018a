package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/internbridge/intern_bridge/database"
	"github.com/internbridge/intern_bridge/models"
	"github.com/internbridge/intern_bridge/notifications"
	"github.com/internbridge/intern_bridge/services"
	"github.com/internbridge/intern_bridge/websocket"
)

type ApplicationResponse struct {
	models.InternshipApplication
	CompanyName string `json:"company_name"`
}

// GetMyApplications lists the student's applications. The company name
// comes from a secondary profile lookup; there is no foreign key from
// internships into company profile data.
func GetMyApplications(c *fiber.Ctx) error {
	studentID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var applications []models.InternshipApplication
	if err := database.DB.Preload("Internship").Where("student_id = ?", studentID).Order("suggested_at desc").Find(&applications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load applications"})
	}

	response := make([]ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		companyName := ""
		var company models.User
		if err := database.DB.Select("company_name", "full_name").Where("id = ?", application.Internship.CompanyID).First(&company).Error; err == nil {
			if company.CompanyName != nil {
				companyName = *company.CompanyName
			} else {
				companyName = company.FullName
			}
		}
		response = append(response, ApplicationResponse{
			InternshipApplication: application,
			CompanyName:           companyName,
		})
	}

	return c.JSON(response)
}

// SuggestApplication is the admin entry point of the pipeline: it puts a
// student forward for an internship at status suggested.
func SuggestApplication(c *fiber.Ctx) error {
	type Request struct {
		StudentID    string  `json:"student_id" validate:"required,uuid4"`
		InternshipID string  `json:"internship_id" validate:"required,uuid4"`
		Notes        *string `json:"notes,omitempty"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var student models.User
	if err := database.DB.Where("id = ? AND role = ?", req.StudentID, "student").First(&student).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	var internship models.Internship
	if err := database.DB.Where("id = ? AND status = ?", req.InternshipID, "active").First(&internship).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Internship not found or not active"})
	}

	var existing int64
	database.DB.Model(&models.InternshipApplication{}).
		Where("student_id = ? AND internship_id = ? AND status NOT IN ?", student.ID, internship.ID, []string{"rejected"}).
		Count(&existing)
	if existing > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Student already has an application for this internship"})
	}

	application := models.InternshipApplication{
		StudentID:    student.ID,
		InternshipID: internship.ID,
		Status:       "suggested",
		SuggestedAt:  time.Now(),
		Notes:        req.Notes,
	}
	if err := database.DB.Create(&application).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create application"})
	}

	websocket.NotifyStatusChange(student.ID, "application", application.ID, application.Status)
	notifications.SendApplicationStatusEmail(student.FullName, student.Email, internship.Title, application.Status)

	return c.Status(fiber.StatusCreated).JSON(application)
}

// transitionApplication applies one pipeline step, stamping timestamps and
// fanning the change out to the student. Returns the fiber error response
// already written on failure.
func transitionApplication(c *fiber.Ctx, application *models.InternshipApplication, to string) error {
	if !models.CanTransitionApplication(application.Status, to) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Invalid application transition"})
	}

	application.Status = to
	now := time.Now()
	switch to {
	case "active":
		application.StartedAt = &now
	case "completed":
		application.CompletedAt = &now
	}

	if err := database.DB.Save(application).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update application"})
	}

	var student models.User
	if err := database.DB.Where("id = ?", application.StudentID).First(&student).Error; err == nil {
		websocket.NotifyStatusChange(student.ID, "application", application.ID, application.Status)
		notifications.SendApplicationStatusEmail(student.FullName, student.Email, application.Internship.Title, application.Status)
	}

	if to == "completed" {
		go services.IssueInternshipCertificate(*application)
	}

	return c.JSON(application)
}

func loadApplication(c *fiber.Ctx) (*models.InternshipApplication, error) {
	var application models.InternshipApplication
	err := database.DB.Preload("Internship").Where("id = ?", c.Params("applicationId")).First(&application).Error
	return &application, err
}

// InstituteApproveApplication moves suggested → institute_approved. The
// institute may only act on its own students.
func InstituteApproveApplication(c *fiber.Ctx) error {
	instituteID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	application, err := loadApplication(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}

	var student models.User
	if err := database.DB.Where("id = ?", application.StudentID).First(&student).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}
	if student.InstituteID == nil || *student.InstituteID != instituteID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Student does not belong to your institute"})
	}

	return transitionApplication(c, application, "institute_approved")
}

// AdminApproveApplication moves institute_approved → admin_approved.
func AdminApproveApplication(c *fiber.Ctx) error {
	application, err := loadApplication(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}
	return transitionApplication(c, application, "admin_approved")
}

// StartApplication moves admin_approved → active; company-only, on its own
// listing.
func StartApplication(c *fiber.Ctx) error {
	companyID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	application, err := loadApplication(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}
	if application.Internship.CompanyID != companyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Application does not belong to your internship"})
	}

	return transitionApplication(c, application, "active")
}

// CompleteApplication moves active → completed and triggers certificate
// issuance.
func CompleteApplication(c *fiber.Ctx) error {
	companyID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	application, err := loadApplication(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}
	if application.Internship.CompanyID != companyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Application does not belong to your internship"})
	}

	return transitionApplication(c, application, "completed")
}

// RejectApplication is reachable from any non-terminal state.
func RejectApplication(c *fiber.Ctx) error {
	type Request struct {
		Notes *string `json:"notes,omitempty"`
	}
	var req Request
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
	}

	application, err := loadApplication(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}

	// institutes may only reject their own students' applications
	if currentRole(c) == "institute" {
		instituteID, err := currentUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		var student models.User
		if err := database.DB.Where("id = ?", application.StudentID).First(&student).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
		}
		if student.InstituteID == nil || *student.InstituteID != instituteID {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Student does not belong to your institute"})
		}
	}

	if req.Notes != nil {
		application.Notes = req.Notes
	}

	return transitionApplication(c, application, "rejected")
}

// ListApplications gives admin and institute dashboards the full pipeline.
// Institutes only see their own students.
func ListApplications(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	query := database.DB.Preload("Internship").Preload("Student").Order("suggested_at desc")

	var caller models.User
	if err := database.DB.Where("id = ?", userID).First(&caller).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if caller.Role == "institute" {
		query = query.Where("student_id IN ?", instituteStudentIDs(userID))
	}

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var applications []models.InternshipApplication
	if err := query.Find(&applications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load applications"})
	}

	return c.JSON(applications)
}
