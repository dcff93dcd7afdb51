package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goldenpalm/resort_backend/handlers"
	"github.com/goldenpalm/resort_backend/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	users := admin.Group("/users")
	users.Get("", handlers.GetUsers)
	users.Put("/:userId/role", handlers.UpdateUserRole)
	users.Put("/:userId/status", handlers.SetUserActive)

	admin.Delete("/bookings/:reference", handlers.PurgeBooking)
}
