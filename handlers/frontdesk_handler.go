package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/goldenpalm/resort_backend/database"
	"github.com/goldenpalm/resort_backend/models"
	"github.com/goldenpalm/resort_backend/services"
)

// GetFrontDeskStatistics summarizes the desk's day: expected arrivals and
// departures, in-house guests and bookings awaiting approval.
func GetFrontDeskStatistics(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")

	var arrivals, departures, inHouse, pending int64
	database.DB.Model(&models.Booking{}).
		Where("check_in_date = ? AND status = ?", today, models.BookingStatusConfirmed).
		Count(&arrivals)
	database.DB.Model(&models.Booking{}).
		Where("check_out_date = ? AND status = ?", today, models.BookingStatusCheckedIn).
		Count(&departures)
	database.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusCheckedIn).
		Count(&inHouse)
	database.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusPending).
		Count(&pending)

	return c.JSON(fiber.Map{
		"todays_arrivals":   arrivals,
		"todays_departures": departures,
		"current_guests":    inHouse,
		"pending_bookings":  pending,
	})
}

func GetTodaysArrivals(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := database.DB.Preload("User").Preload("Room").
		Where("check_in_date = ? AND status = ?", time.Now().Format("2006-01-02"), models.BookingStatusConfirmed).
		Order("created_at").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch arrivals"})
	}
	return c.JSON(bookings)
}

func GetTodaysDepartures(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := database.DB.Preload("User").Preload("Room").
		Where("check_out_date = ? AND status = ?", time.Now().Format("2006-01-02"), models.BookingStatusCheckedIn).
		Order("created_at").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch departures"})
	}
	return c.JSON(bookings)
}

func GetCurrentGuests(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := database.DB.Preload("User").Preload("Room").
		Where("status = ?", models.BookingStatusCheckedIn).
		Order("check_in_date").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch current guests"})
	}
	return c.JSON(bookings)
}

func GetPendingBookings(c *fiber.Ctx) error {
	bookings, err := bookingService().ByStatus(models.BookingStatusPending)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(bookings)
}

func GetAllBookings(c *fiber.Ctx) error {
	if status := c.Query("status"); status != "" {
		bookings, err := bookingService().ByStatus(status)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(bookings)
	}
	bookings, err := bookingService().All()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(bookings)
}

// ConfirmBooking approves a pending booking. Availability is re-checked
// because the room may have been taken since the booking was created.
func ConfirmBooking(c *fiber.Ctx) error {
	booking, err := bookingService().Approve(c.Params("reference"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(booking)
}

func RejectBooking(c *fiber.Ctx) error {
	booking, err := bookingService().Reject(c.Params("reference"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(booking)
}

func CheckInBooking(c *fiber.Ctx) error {
	booking, err := bookingService().CheckIn(c.Params("reference"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(booking)
}

func CheckOutBooking(c *fiber.Ctx) error {
	booking, err := bookingService().CheckOut(c.Params("reference"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(booking)
}

type UpdateBookingRequest struct {
	CheckInDate     *string `json:"check_in_date"`
	CheckOutDate    *string `json:"check_out_date"`
	GuestCount      *int    `json:"guest_count"`
	SpecialRequests *string `json:"special_requests"`
}

func UpdateBooking(c *fiber.Ctx) error {
	var req UpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var in services.UpdateBookingInput
	if req.CheckInDate != nil {
		t, err := time.Parse("2006-01-02", *req.CheckInDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "check_in_date must be YYYY-MM-DD"})
		}
		in.CheckInDate = &t
	}
	if req.CheckOutDate != nil {
		t, err := time.Parse("2006-01-02", *req.CheckOutDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "check_out_date must be YYYY-MM-DD"})
		}
		in.CheckOutDate = &t
	}
	in.GuestCount = req.GuestCount
	in.SpecialRequests = req.SpecialRequests

	booking, err := bookingService().Update(c.Params("reference"), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(booking)
}

// Event booking staff operations share the front-desk surface.

func GetAllEventBookings(c *fiber.Ctx) error {
	var bookings []models.EventBooking
	query := database.DB.Preload("User").Preload("EventSpace").Order("event_date, start_time")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch event bookings"})
	}
	return c.JSON(bookings)
}

func ConfirmEventBooking(c *fiber.Ctx) error {
	booking, err := eventBookingService().Confirm(c.Params("reference"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(booking)
}

func RejectEventBooking(c *fiber.Ctx) error {
	booking, err := eventBookingService().Reject(c.Params("reference"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(booking)
}

func StartEventBooking(c *fiber.Ctx) error {
	booking, err := eventBookingService().Start(c.Params("reference"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(booking)
}

func CompleteEventBooking(c *fiber.Ctx) error {
	booking, err := eventBookingService().Complete(c.Params("reference"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(booking)
}
