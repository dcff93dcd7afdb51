package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goldenpalm/resort_backend/handlers"
)

// PublicRoutes serve the browsing surface: anyone can look at rooms, event
// spaces and availability without logging in.
func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	rooms := api.Group("/rooms")
	rooms.Get("", handlers.GetRooms)
	rooms.Get("/available", handlers.GetAvailableRooms)
	rooms.Get("/:roomId", handlers.GetRoom)

	spaces := api.Group("/event-spaces")
	spaces.Get("", handlers.GetEventSpaces)
	spaces.Get("/available", handlers.GetAvailableEventSpaces)
	spaces.Get("/:spaceId", handlers.GetEventSpace)
}
