package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/internbridge/intern_bridge/handlers"
	"github.com/internbridge/intern_bridge/middleware"
)

func StudentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	student := api.Group("/student", middleware.Protected(), middleware.StudentRequired())

	enrollments := student.Group("/enrollments")
	enrollments.Post("", handlers.EnrollInStream)
	enrollments.Get("", handlers.GetMyEnrollments)
	enrollments.Delete("/:enrollmentId", handlers.CancelEnrollment)
	enrollments.Get("/:enrollmentId/modules", handlers.GetEnrollmentModules)
	enrollments.Put("/:enrollmentId/modules/:moduleId/progress", handlers.UpdateModuleProgress)

	student.Get("/applications", handlers.GetMyApplications)
	student.Get("/certificates", handlers.GetMyCertificates)
}
