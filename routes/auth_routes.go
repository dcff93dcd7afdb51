package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goldenpalm/resort_backend/handlers"
	"github.com/goldenpalm/resort_backend/middleware"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)

	profile := api.Group("/profile", middleware.Protected())
	profile.Get("/me", handlers.GetMe)
	profile.Put("/me", handlers.UpdateProfile)
	profile.Put("/password", handlers.ChangePassword)
}
