package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/internbridge/intern_bridge/database"
	"github.com/internbridge/intern_bridge/models"
	"gorm.io/gorm"
)

type EnrollRequest struct {
	Stream string `json:"stream" validate:"required"`
}

type EnrollmentResponse struct {
	models.Enrollment
	StreamLabel     string `json:"stream_label"`
	OverallProgress int    `json:"overall_progress"`
	Locked          bool   `json:"locked"`
}

// OverallProgress aggregates module progress for one enrollment: a completed
// module counts as 100, otherwise its raw percentage. Zero modules means 0.
// The result is clamped to [0, 100].
func OverallProgress(progresses []models.ModuleProgress) int {
	if len(progresses) == 0 {
		return 0
	}

	sum := 0
	for _, p := range progresses {
		if p.Completed {
			sum += 100
		} else {
			sum += p.ProgressPercentage
		}
	}

	overall := sum / len(progresses)
	if overall < 0 {
		return 0
	}
	if overall > 100 {
		return 100
	}
	return overall
}

var errEnrollmentLocked = errors.New("student already has an active enrollment")
var errDuplicatePending = errors.New("enrollment for this stream already pending")

// EnrollInStream creates a fresh pending_payment enrollment. The one-locked-
// enrollment-per-student rule is checked inside the insert transaction, and
// the partial unique index on enrollments backs it up against concurrent
// writers.
func EnrollInStream(c *fiber.Ctx) error {
	studentID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !models.ValidStream(req.Stream) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown training stream"})
	}

	var student models.User
	if err := database.DB.Where("id = ?", studentID).First(&student).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	var enrollment models.Enrollment
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var locked int64
		if err := tx.Model(&models.Enrollment{}).
			Where("student_id = ? AND status NOT IN ?", studentID, models.UnlockedEnrollmentStatuses).
			Count(&locked).Error; err != nil {
			return err
		}
		if locked > 0 {
			return errEnrollmentLocked
		}

		var pending int64
		if err := tx.Model(&models.Enrollment{}).
			Where("student_id = ? AND stream = ? AND status = ?", studentID, req.Stream, "pending_payment").
			Count(&pending).Error; err != nil {
			return err
		}
		if pending > 0 {
			return errDuplicatePending
		}

		enrollment = models.Enrollment{
			StudentID:   studentID,
			Stream:      req.Stream,
			Status:      "pending_payment",
			EnrolledAt:  time.Now(),
			InstituteID: student.InstituteID,
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}

		var modules []models.TrainingModule
		if err := tx.Where("stream = ?", req.Stream).Order("sort_order asc").Find(&modules).Error; err != nil {
			return err
		}
		for _, module := range modules {
			progress := models.ModuleProgress{
				EnrollmentID: enrollment.ID,
				ModuleID:     module.ID,
			}
			if err := tx.Create(&progress).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errEnrollmentLocked) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You already have an active enrollment"})
		}
		if errors.Is(err, errDuplicatePending) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You already have a pending enrollment for this stream"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to enroll in stream"})
	}

	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

// CancelEnrollment cancels the caller's enrollment, but only while it is
// still waiting on payment. The update is filtered on the expected status so
// a concurrent approval cannot be overwritten.
func CancelEnrollment(c *fiber.Ctx) error {
	studentID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	enrollmentID := c.Params("enrollmentId")

	result := database.DB.Model(&models.Enrollment{}).
		Where("id = ? AND student_id = ? AND status = ?", enrollmentID, studentID, "pending_payment").
		Update("status", "cancelled")
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel enrollment"})
	}

	if result.RowsAffected == 0 {
		var enrollment models.Enrollment
		if err := database.DB.Where("id = ? AND student_id = ?", enrollmentID, studentID).First(&enrollment).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
		}
		if !models.CanCancelEnrollment(enrollment.Status) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Only enrollments awaiting payment can be cancelled"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel enrollment"})
	}

	return c.JSON(fiber.Map{"message": "Enrollment cancelled"})
}

func GetMyEnrollments(c *fiber.Ctx) error {
	studentID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var enrollments []models.Enrollment
	if err := database.DB.Where("student_id = ?", studentID).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load enrollments"})
	}

	response := make([]EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var progresses []models.ModuleProgress
		database.DB.Where("enrollment_id = ?", enrollment.ID).Find(&progresses)

		response = append(response, EnrollmentResponse{
			Enrollment:      enrollment,
			StreamLabel:     models.StreamLabels[enrollment.Stream],
			OverallProgress: OverallProgress(progresses),
			Locked:          enrollment.Locked(),
		})
	}

	return c.JSON(response)
}

func GetEnrollmentModules(c *fiber.Ctx) error {
	studentID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	enrollmentID := c.Params("enrollmentId")

	var enrollment models.Enrollment
	if err := database.DB.Where("id = ? AND student_id = ?", enrollmentID, studentID).First(&enrollment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}

	var progresses []models.ModuleProgress
	if err := database.DB.Preload("Module").Where("enrollment_id = ?", enrollment.ID).Find(&progresses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load course data"})
	}

	return c.JSON(fiber.Map{
		"enrollment":       enrollment,
		"modules":          progresses,
		"overall_progress": OverallProgress(progresses),
	})
}

// UpdateModuleProgress records a student's progress on one module of an
// active enrollment.
func UpdateModuleProgress(c *fiber.Ctx) error {
	studentID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	type Request struct {
		ProgressPercentage int  `json:"progress_percentage" validate:"min=0,max=100"`
		Completed          bool `json:"completed"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	enrollmentID := c.Params("enrollmentId")
	moduleID, err := uuid.Parse(c.Params("moduleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid module id"})
	}

	var enrollment models.Enrollment
	if err := database.DB.Where("id = ? AND student_id = ?", enrollmentID, studentID).First(&enrollment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}
	if enrollment.Status != "active" {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Progress can only be recorded on active enrollments"})
	}

	var progress models.ModuleProgress
	if err := database.DB.Where("enrollment_id = ? AND module_id = ?", enrollment.ID, moduleID).First(&progress).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found for this enrollment"})
	}

	progress.ProgressPercentage = req.ProgressPercentage
	progress.Completed = req.Completed
	if req.Completed {
		progress.ProgressPercentage = 100
	}

	if err := database.DB.Save(&progress).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update progress"})
	}

	return c.JSON(progress)
}
