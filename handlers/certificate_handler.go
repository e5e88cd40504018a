package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/internbridge/intern_bridge/database"
	"github.com/internbridge/intern_bridge/models"
)

// GetMyCertificates lists the student's issued certificates. Issuance
// itself happens when an enrollment or application completes; this view is
// read-only.
func GetMyCertificates(c *fiber.Ctx) error {
	studentID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var certificates []models.Certificate
	if err := database.DB.Where("student_id = ?", studentID).Order("issued_at desc").Find(&certificates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load certificates"})
	}

	return c.JSON(certificates)
}

// VerifyCertificate is the public lookup backing the QR code printed on a
// certificate.
func VerifyCertificate(c *fiber.Ctx) error {
	var certificate models.Certificate
	if err := database.DB.Preload("Student").Where("certificate_number = ?", c.Params("number")).First(&certificate).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found"})
	}

	return c.JSON(fiber.Map{
		"certificate_number": certificate.CertificateNumber,
		"certificate_type":   certificate.CertificateType,
		"student_name":       certificate.Student.FullName,
		"issued_at":          certificate.IssuedAt,
	})
}
