package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/internbridge/intern_bridge/database"
	"github.com/internbridge/intern_bridge/models"
)

// GetInstituteStudents lists the students attached to the calling institute.
func GetInstituteStudents(c *fiber.Ctx) error {
	instituteID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var students []models.User
	if err := database.DB.Where("institute_id = ? AND role = ?", instituteID, "student").Order("created_at desc").Find(&students).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load students"})
	}

	return c.JSON(students)
}

func GetInstituteEnrollments(c *fiber.Ctx) error {
	instituteID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var enrollments []models.Enrollment
	if err := database.DB.Preload("Student").Where("institute_id = ?", instituteID).Order("enrolled_at desc").Find(&enrollments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load enrollments"})
	}

	return c.JSON(enrollments)
}

// SetEnrollmentApproval overwrites the student-institute approval field on
// one of the institute's enrollments. Like institute verification this is
// an unguarded overwrite with no history.
func SetEnrollmentApproval(c *fiber.Ctx) error {
	instituteID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

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

	var enrollment models.Enrollment
	if err := database.DB.Where("id = ?", c.Params("enrollmentId")).First(&enrollment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}
	if enrollment.InstituteID == nil || *enrollment.InstituteID != instituteID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Enrollment does not belong to your institute"})
	}

	enrollment.InstituteApprovalStatus = req.Decision
	if err := database.DB.Save(&enrollment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update approval status"})
	}

	return c.JSON(enrollment)
}

// instituteStudentIDs is shared by institute-scoped listings.
func instituteStudentIDs(instituteID uuid.UUID) []uuid.UUID {
	var ids []uuid.UUID
	database.DB.Model(&models.User{}).Where("institute_id = ?", instituteID).Pluck("id", &ids)
	return ids
}
