package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/internbridge/intern_bridge/database"
	"github.com/internbridge/intern_bridge/models"
)

type UpdateProfileRequest struct {
	FullName          *string `json:"full_name"`
	Phone             *string `json:"phone"`
	ProfilePictureURL *string `json:"profile_picture_url"`

	InstitutionName *string `json:"institution_name"`
	CourseName      *string `json:"course_name"`
	GraduationYear  *int    `json:"graduation_year"`
	InstituteID     *string `json:"institute_id"`

	InstituteName *string `json:"institute_name"`

	CompanyName *string `json:"company_name"`
	CompanySize *string `json:"company_size"`
	Industry    *string `json:"industry"`
}

func GetProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(user)
}

// UpdateProfile applies the role-appropriate fields. Verification and
// approval fields are admin-only and never writable here.
func UpdateProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.ProfilePictureURL != nil {
		user.ProfilePictureURL = req.ProfilePictureURL
	}

	switch user.Role {
	case "student":
		if req.InstitutionName != nil {
			user.InstitutionName = req.InstitutionName
		}
		if req.CourseName != nil {
			user.CourseName = req.CourseName
		}
		if req.GraduationYear != nil {
			user.GraduationYear = req.GraduationYear
		}
		if req.InstituteID != nil {
			instituteID, err := uuid.Parse(*req.InstituteID)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid institute id"})
			}
			var institute models.User
			if err := database.DB.Where("id = ? AND role = ? AND verification_status = ?", instituteID, "institute", "approved").First(&institute).Error; err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Institute not found or not approved"})
			}
			user.InstituteID = &instituteID
		}
	case "institute":
		if req.InstituteName != nil {
			user.InstituteName = req.InstituteName
		}
	case "company":
		if req.CompanyName != nil {
			user.CompanyName = req.CompanyName
		}
		if req.CompanySize != nil {
			user.CompanySize = req.CompanySize
		}
		if req.Industry != nil {
			user.Industry = req.Industry
		}
	}

	database.DB.Save(&user)

	return c.JSON(user)
}
