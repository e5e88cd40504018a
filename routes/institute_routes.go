package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/internbridge/intern_bridge/handlers"
	"github.com/internbridge/intern_bridge/middleware"
)

func InstituteRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	institute := api.Group("/institute", middleware.Protected(), middleware.InstituteRequired())

	institute.Get("/students", handlers.GetInstituteStudents)
	institute.Get("/enrollments", handlers.GetInstituteEnrollments)
	institute.Put("/enrollments/:enrollmentId/approval", handlers.SetEnrollmentApproval)

	applications := institute.Group("/applications")
	applications.Get("", handlers.ListApplications)
	applications.Post("/:applicationId/approve", handlers.InstituteApproveApplication)
	applications.Post("/:applicationId/reject", handlers.RejectApplication)
}
