package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goldenpalm/resort_backend/handlers"
	"github.com/goldenpalm/resort_backend/middleware"
)

func ManagerRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	manager := api.Group("/manager", middleware.Protected(), middleware.ManagerRequired())

	manager.Get("/dashboard", handlers.GetManagerDashboard)
	manager.Get("/analytics/revenue", handlers.GetRevenueAnalytics)
	manager.Get("/analytics/occupancy", handlers.GetOccupancyAnalytics)
	manager.Get("/staff", handlers.GetStaff)

	rooms := manager.Group("/rooms")
	rooms.Post("", handlers.CreateRoom)
	rooms.Put("/:roomId", handlers.UpdateRoom)
	rooms.Put("/:roomId/status", handlers.UpdateRoomStatus)

	spaces := manager.Group("/event-spaces")
	spaces.Post("", handlers.CreateEventSpace)
	spaces.Put("/:spaceId/status", handlers.UpdateEventSpaceStatus)
}
