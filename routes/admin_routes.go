package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/internbridge/intern_bridge/handlers"
	"github.com/internbridge/intern_bridge/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/analytics", handlers.GetDashboardAnalytics)

	users := admin.Group("/users")
	users.Get("", handlers.GetAllUsers)
	users.Put("/:userId/status", handlers.ToggleUserStatus)

	admin.Put("/institutes/:userId/verification", handlers.SetInstituteVerification)

	enrollments := admin.Group("/enrollments")
	enrollments.Get("", handlers.ListEnrollments)
	enrollments.Post("/:enrollmentId/confirm-payment", handlers.ConfirmEnrollmentPayment)
	enrollments.Post("/:enrollmentId/approve", handlers.ApproveEnrollment)
	enrollments.Post("/:enrollmentId/complete", handlers.CompleteEnrollment)

	applications := admin.Group("/applications")
	applications.Get("", handlers.ListApplications)
	applications.Post("", handlers.SuggestApplication)
	applications.Post("/:applicationId/approve", handlers.AdminApproveApplication)
	applications.Post("/:applicationId/reject", handlers.RejectApplication)

	admin.Get("/contact-submissions", handlers.GetContactSubmissions)
}
