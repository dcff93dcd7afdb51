package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/goldenpalm/resort_backend/database"
	"github.com/goldenpalm/resort_backend/models"
	"github.com/goldenpalm/resort_backend/services"
)

// GetManagerDashboard gives occupancy, booking and revenue counts at a
// glance. Revenue sums completed and partially refunded payments net of
// refunds.
func GetManagerDashboard(c *fiber.Ctx) error {
	var totalRooms, occupiedRooms, maintenanceRooms int64
	database.DB.Model(&models.Room{}).Where("is_active = ?", true).Count(&totalRooms)
	database.DB.Model(&models.Room{}).Where("status = ?", models.RoomStatusOccupied).Count(&occupiedRooms)
	database.DB.Model(&models.Room{}).Where("status = ?", models.RoomStatusMaintenance).Count(&maintenanceRooms)

	var activeBookings, pendingBookings, upcomingEvents int64
	database.DB.Model(&models.Booking{}).
		Where("status IN ?", []string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
		Count(&activeBookings)
	database.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusPending).Count(&pendingBookings)
	database.DB.Model(&models.EventBooking{}).
		Where("status IN ? AND event_date >= ?",
			[]string{models.EventBookingStatusPending, models.EventBookingStatusConfirmed},
			time.Now().Format("2006-01-02")).
		Count(&upcomingEvents)

	var pendingRefunds int64
	database.DB.Model(&models.RefundRequest{}).
		Where("status = ?", models.RefundStatusPending).Count(&pendingRefunds)

	payments, err := store().Payments().ListAll()
	if err != nil {
		return respondServiceError(c, err)
	}

	occupancyRate := decimal.Zero
	if totalRooms > 0 {
		occupancyRate = decimal.NewFromInt(occupiedRooms).
			Div(decimal.NewFromInt(totalRooms)).
			Mul(decimal.NewFromInt(100)).Round(2)
	}

	return c.JSON(fiber.Map{
		"total_rooms":       totalRooms,
		"occupied_rooms":    occupiedRooms,
		"maintenance_rooms": maintenanceRooms,
		"occupancy_rate":    occupancyRate,
		"active_bookings":   activeBookings,
		"pending_bookings":  pendingBookings,
		"upcoming_events":   upcomingEvents,
		"pending_refunds":   pendingRefunds,
		"total_revenue":     services.TotalRevenue(payments),
	})
}

// GetRevenueAnalytics breaks revenue down between room and event bookings
// over an optional date window (from/to, YYYY-MM-DD).
func GetRevenueAnalytics(c *fiber.Ctx) error {
	from, to, err := parseReportWindow(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var payments []models.Payment
	if err := database.DB.
		Where("payment_status IN ?", []string{models.PaymentStatusCompleted, models.PaymentStatusPartiallyRefunded}).
		Where("payment_date >= ? AND payment_date < ?", from, to).
		Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	roomRevenue := decimal.Zero
	eventRevenue := decimal.Zero
	for _, p := range payments {
		amount := p.Amount
		if p.RefundAmount != nil {
			amount = amount.Sub(*p.RefundAmount)
		}
		if p.BookingID != nil {
			roomRevenue = roomRevenue.Add(amount)
		} else if p.EventBookingID != nil {
			eventRevenue = eventRevenue.Add(amount)
		}
	}

	return c.JSON(fiber.Map{
		"from":          from.Format("2006-01-02"),
		"to":            to.Format("2006-01-02"),
		"room_revenue":  roomRevenue,
		"event_revenue": eventRevenue,
		"total_revenue": roomRevenue.Add(eventRevenue),
		"payment_count": len(payments),
	})
}

// GetOccupancyAnalytics counts nights sold within the window against nights
// available for the active room inventory.
func GetOccupancyAnalytics(c *fiber.Ctx) error {
	from, to, err := parseReportWindow(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var bookings []models.Booking
	if err := database.DB.
		Where("status IN ?", []string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn, models.BookingStatusCheckedOut}).
		Where("check_in_date < ? AND check_out_date > ?", to, from).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	nightsSold := 0
	for _, b := range bookings {
		start := b.CheckInDate
		if start.Before(from) {
			start = from
		}
		end := b.CheckOutDate
		if end.After(to) {
			end = to
		}
		nightsSold += int(end.Sub(start).Hours() / 24)
	}

	totalRooms, err := store().Rooms().Count()
	if err != nil {
		return respondServiceError(c, err)
	}
	windowNights := int(to.Sub(from).Hours()/24) * int(totalRooms)

	rate := decimal.Zero
	if windowNights > 0 {
		rate = decimal.NewFromInt(int64(nightsSold)).
			Div(decimal.NewFromInt(int64(windowNights))).
			Mul(decimal.NewFromInt(100)).Round(2)
	}

	return c.JSON(fiber.Map{
		"from":             from.Format("2006-01-02"),
		"to":               to.Format("2006-01-02"),
		"nights_sold":      nightsSold,
		"nights_available": windowNights,
		"occupancy_rate":   rate,
	})
}

// GetStaff lists back-of-house users for the manager's staff view.
func GetStaff(c *fiber.Ctx) error {
	staff, err := store().Users().ListByRoles(
		models.RoleAdmin, models.RoleManager, models.RoleFrontDesk,
		models.RolePaymentOfficer, models.RoleBackOffice)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(staff)
}

// parseReportWindow reads from/to query params. Missing values default to
// the last 30 days; to is exclusive and bumped a day so single-day windows
// work.
func parseReportWindow(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now().UTC().Truncate(24 * time.Hour)
	from := now.AddDate(0, 0, -30)
	to := now.AddDate(0, 0, 1)

	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, &services.ValidationError{Msg: "from must be YYYY-MM-DD"}
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, &services.ValidationError{Msg: "to must be YYYY-MM-DD"}
		}
		to = t.AddDate(0, 0, 1)
	}
	if !from.Before(to) {
		return time.Time{}, time.Time{}, &services.ValidationError{Msg: "from must be before to"}
	}
	return from, to, nil
}
