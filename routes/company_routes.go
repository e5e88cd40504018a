package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/internbridge/intern_bridge/handlers"
	"github.com/internbridge/intern_bridge/middleware"
)

func CompanyRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	company := api.Group("/company", middleware.Protected(), middleware.CompanyRequired())

	internships := company.Group("/internships")
	internships.Post("", handlers.CreateInternship)
	internships.Get("", handlers.GetCompanyInternships)
	internships.Patch("/:internshipId/status", handlers.UpdateInternshipStatus)
	internships.Delete("/:internshipId", handlers.DeleteInternship)

	applications := company.Group("/applications")
	applications.Post("/:applicationId/start", handlers.StartApplication)
	applications.Post("/:applicationId/complete", handlers.CompleteApplication)
}
