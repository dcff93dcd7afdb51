package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goldenpalm/resort_backend/handlers"
	"github.com/goldenpalm/resort_backend/middleware"
)

func FrontDeskRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	desk := api.Group("/frontdesk", middleware.Protected(), middleware.FrontDeskRequired())

	desk.Get("/statistics", handlers.GetFrontDeskStatistics)
	desk.Get("/arrivals", handlers.GetTodaysArrivals)
	desk.Get("/departures", handlers.GetTodaysDepartures)
	desk.Get("/current-guests", handlers.GetCurrentGuests)

	bookings := desk.Group("/bookings")
	bookings.Get("", handlers.GetAllBookings)
	bookings.Get("/pending", handlers.GetPendingBookings)
	bookings.Put("/:reference", handlers.UpdateBooking)
	bookings.Post("/:reference/confirm", handlers.ConfirmBooking)
	bookings.Post("/:reference/reject", handlers.RejectBooking)
	bookings.Post("/:reference/checkin", handlers.CheckInBooking)
	bookings.Post("/:reference/checkout", handlers.CheckOutBooking)

	events := desk.Group("/event-bookings")
	events.Get("", handlers.GetAllEventBookings)
	events.Post("/:reference/confirm", handlers.ConfirmEventBooking)
	events.Post("/:reference/reject", handlers.RejectEventBooking)
	events.Post("/:reference/start", handlers.StartEventBooking)
	events.Post("/:reference/complete", handlers.CompleteEventBooking)
}
