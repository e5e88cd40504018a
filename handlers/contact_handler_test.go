package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidateContactCategoryStudent(t *testing.T) {
	req := ContactRequest{
		Name:     "Asha Patel",
		Email:    "asha@example.com",
		Category: "student",
		Message:  "I would like placement support.",
	}

	err := ValidateContactCategory(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "placement_support")

	req.PlacementSupport = strPtr("yes")
	err = ValidateContactCategory(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "industries_interested")

	req.IndustriesInterested = []string{"fintech"}
	assert.NoError(t, ValidateContactCategory(req))
}

func TestValidateContactCategoryCompanyAndInstitute(t *testing.T) {
	company := ContactRequest{Category: "company"}
	require.Error(t, ValidateContactCategory(company))
	company.CompanyName = strPtr("Acme Ltd")
	assert.NoError(t, ValidateContactCategory(company))

	institute := ContactRequest{Category: "institute"}
	require.Error(t, ValidateContactCategory(institute))
	institute.InstituteName = strPtr("Northfield College")
	assert.NoError(t, ValidateContactCategory(institute))

	assert.NoError(t, ValidateContactCategory(ContactRequest{Category: "general"}))
}

func contactApp() *fiber.App {
	app := fiber.New()
	app.Post("/contact", SubmitContactForm)
	return app
}

// A filled honeypot is accepted but never reaches the database; the handler
// returns before any insert, so no DB connection is needed here.
func TestSubmitContactFormHoneypotDiscards(t *testing.T) {
	app := contactApp()

	body, _ := json.Marshal(ContactRequest{
		Name:                 "Bot Smith",
		Email:                "bot@example.com",
		Category:             "student",
		Message:              "definitely a real enquiry",
		PlacementSupport:     strPtr("yes"),
		IndustriesInterested: []string{"spam"},
		Website:              "https://spam.example.com",
	})

	req := httptest.NewRequest("POST", "/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSubmitContactFormRejectsBeforeInsert(t *testing.T) {
	app := contactApp()

	// student enquiry without the conditional fields fails validation
	body, _ := json.Marshal(ContactRequest{
		Name:     "Asha Patel",
		Email:    "asha@example.com",
		Category: "student",
		Message:  "I would like placement support.",
	})

	req := httptest.NewRequest("POST", "/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubmitContactFormRejectsUnknownCategory(t *testing.T) {
	app := contactApp()

	body, _ := json.Marshal(ContactRequest{
		Name:     "Asha Patel",
		Email:    "asha@example.com",
		Category: "investor",
		Message:  "I would like to invest.",
	})

	req := httptest.NewRequest("POST", "/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
