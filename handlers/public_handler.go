package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/internbridge/intern_bridge/database"
	"github.com/internbridge/intern_bridge/models"
)

type StreamInfo struct {
	Code    string                  `json:"code"`
	Label   string                  `json:"label"`
	Modules []models.TrainingModule `json:"modules"`
}

// GetStreams returns the four training streams with their curricula, for
// the stream-detail pages.
func GetStreams(c *fiber.Ctx) error {
	streams := make([]StreamInfo, 0, len(models.StreamLabels))
	for code, label := range models.StreamLabels {
		var modules []models.TrainingModule
		if err := database.DB.Where("stream = ?", code).Order("sort_order asc").Find(&modules).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load course data"})
		}
		streams = append(streams, StreamInfo{Code: code, Label: label, Modules: modules})
	}

	return c.JSON(streams)
}

// GetApprovedInstitutes lists verified partner institutes for the sign-up
// dropdown.
func GetApprovedInstitutes(c *fiber.Ctx) error {
	type InstituteInfo struct {
		ID            string `json:"id"`
		InstituteName string `json:"institute_name"`
	}

	var institutes []models.User
	if err := database.DB.
		Where("role = ? AND verification_status = ?", "institute", "approved").
		Order("institute_name asc").
		Find(&institutes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load institutes"})
	}

	response := make([]InstituteInfo, 0, len(institutes))
	for _, institute := range institutes {
		name := institute.FullName
		if institute.InstituteName != nil {
			name = *institute.InstituteName
		}
		response = append(response, InstituteInfo{ID: institute.ID.String(), InstituteName: name})
	}

	return c.JSON(response)
}
