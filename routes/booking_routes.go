package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goldenpalm/resort_backend/handlers"
	"github.com/goldenpalm/resort_backend/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1", middleware.Protected())

	bookings := api.Group("/bookings")
	bookings.Post("", handlers.CreateBooking)
	bookings.Get("/my", handlers.GetMyBookings)
	bookings.Get("/:reference", handlers.GetBookingByReference)
	bookings.Post("/:reference/cancel", handlers.CancelMyBooking)

	events := api.Group("/event-bookings")
	events.Post("", handlers.CreateEventBooking)
	events.Get("/my", handlers.GetMyEventBookings)
	events.Get("/:bookingId", handlers.GetEventBooking)
	events.Post("/:bookingId/cancel", handlers.CancelMyEventBooking)

	refunds := api.Group("/refund-requests")
	refunds.Post("", handlers.CreateRefundRequest)
	refunds.Get("/my", handlers.GetMyRefundRequests)
}
