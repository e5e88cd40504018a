package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/internbridge/intern_bridge/database"
	"github.com/internbridge/intern_bridge/models"
)

type CreateInternshipRequest struct {
	Title        string     `json:"title" validate:"required,min=3"`
	Stream       string     `json:"stream" validate:"required"`
	Duration     string     `json:"duration" validate:"required"`
	Positions    string     `json:"positions"`
	Description  string     `json:"description" validate:"required"`
	Requirements *string    `json:"requirements,omitempty"`
	EndsAt       *time.Time `json:"ends_at,omitempty"`
}

// ParsePositions keeps listings at one position minimum: garbage or missing
// input becomes 1.
func ParsePositions(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func CreateInternship(c *fiber.Ctx) error {
	companyID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req CreateInternshipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	streamLabel, ok := models.StreamLabels[req.Stream]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown training stream"})
	}
	durationLabel, ok := models.DurationLabels[req.Duration]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown duration"})
	}

	internship := models.Internship{
		CompanyID:    companyID,
		Title:        req.Title,
		Stream:       streamLabel,
		Duration:     durationLabel,
		Positions:    ParsePositions(req.Positions),
		Description:  req.Description,
		Requirements: req.Requirements,
		Status:       "draft",
		EndsAt:       req.EndsAt,
	}

	if err := database.DB.Create(&internship).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create internship"})
	}

	return c.Status(fiber.StatusCreated).JSON(internship)
}

func GetCompanyInternships(c *fiber.Ctx) error {
	companyID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var internships []models.Internship
	if err := database.DB.Where("company_id = ?", companyID).Order("created_at desc").Find(&internships).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load internships"})
	}

	return c.JSON(internships)
}

// UpdateInternshipStatus overwrites the listing status. There is no
// transition guard between draft, active and closed.
func UpdateInternshipStatus(c *fiber.Ctx) error {
	companyID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	type Request struct {
		Status string `json:"status" validate:"required,oneof=draft active closed"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var internship models.Internship
	if err := database.DB.Where("id = ? AND company_id = ?", c.Params("internshipId"), companyID).First(&internship).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Internship not found"})
	}

	internship.Status = req.Status
	if err := database.DB.Save(&internship).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update internship"})
	}

	return c.JSON(internship)
}

// DeleteInternship hard-deletes the listing. No soft delete or audit trail.
func DeleteInternship(c *fiber.Ctx) error {
	companyID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	result := database.DB.Where("id = ? AND company_id = ?", c.Params("internshipId"), companyID).Delete(&models.Internship{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete internship"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Internship not found"})
	}

	return c.JSON(fiber.Map{"message": "Internship deleted"})
}

func ListActiveInternships(c *fiber.Ctx) error {
	var internships []models.Internship
	if err := database.DB.Where("status = ?", "active").Order("created_at desc").Find(&internships).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load internships"})
	}

	return c.JSON(internships)
}
