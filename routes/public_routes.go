package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/internbridge/intern_bridge/handlers"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	public := api.Group("/public")
	public.Get("/streams", handlers.GetStreams)
	public.Get("/institutes", handlers.GetApprovedInstitutes)
	public.Get("/internships", handlers.ListActiveInternships)
	public.Post("/contact", handlers.SubmitContactForm)
	public.Get("/certificates/:number", handlers.VerifyCertificate)
}
