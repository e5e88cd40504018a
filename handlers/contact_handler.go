package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/internbridge/intern_bridge/database"
	"github.com/internbridge/intern_bridge/models"
)

type ContactRequest struct {
	Name     string  `json:"name" validate:"required,min=2"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    *string `json:"phone,omitempty"`
	Category string  `json:"category" validate:"required,oneof=student company institute general"`
	Message  string  `json:"message" validate:"required,min=10"`

	PlacementSupport     *string  `json:"placement_support,omitempty"`
	IndustriesInterested []string `json:"industries_interested,omitempty"`
	CompanyName          *string  `json:"company_name,omitempty"`
	InstituteName        *string  `json:"institute_name,omitempty"`

	// honeypot; real users never fill this
	Website string `json:"website,omitempty"`
}

// ValidateContactCategory enforces the category-conditional required fields
// on top of the struct tags.
func ValidateContactCategory(req ContactRequest) error {
	switch req.Category {
	case "student":
		if req.PlacementSupport == nil || *req.PlacementSupport == "" {
			return errors.New("placement_support is required for student enquiries")
		}
		if len(req.IndustriesInterested) == 0 {
			return errors.New("industries_interested is required for student enquiries")
		}
	case "company":
		if req.CompanyName == nil || *req.CompanyName == "" {
			return errors.New("company_name is required for company enquiries")
		}
	case "institute":
		if req.InstituteName == nil || *req.InstituteName == "" {
			return errors.New("institute_name is required for institute enquiries")
		}
	}
	return nil
}

// SubmitContactForm records an inbound enquiry. Submissions with the
// honeypot field filled are accepted but silently discarded.
func SubmitContactForm(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ValidateContactCategory(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Website != "" {
		return c.JSON(fiber.Map{"message": "Thank you for reaching out. We'll get back to you soon."})
	}

	submission := models.ContactSubmission{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Category:         req.Category,
		Message:          req.Message,
		PlacementSupport: req.PlacementSupport,
		CompanyName:      req.CompanyName,
		InstituteName:    req.InstituteName,
	}
	if len(req.IndustriesInterested) > 0 {
		industries := strings.Join(req.IndustriesInterested, ", ")
		submission.IndustriesInterested = &industries
	}

	if err := database.DB.Create(&submission).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit enquiry"})
	}

	return c.JSON(fiber.Map{"message": "Thank you for reaching out. We'll get back to you soon."})
}

// GetContactSubmissions lists enquiries for the admin dashboard.
func GetContactSubmissions(c *fiber.Ctx) error {
	query := database.DB.Order("created_at desc")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var submissions []models.ContactSubmission
	if err := query.Find(&submissions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load submissions"})
	}

	return c.JSON(submissions)
}
