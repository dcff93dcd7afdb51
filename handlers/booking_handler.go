package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/goldenpalm/resort_backend/database"
	"github.com/goldenpalm/resort_backend/middleware"
	"github.com/goldenpalm/resort_backend/models"
	"github.com/goldenpalm/resort_backend/notifications"
	"github.com/goldenpalm/resort_backend/services"
)

type CreateBookingRequest struct {
	RoomID          string `json:"room_id" validate:"required,uuid4"`
	CheckInDate     string `json:"check_in_date" validate:"required"`
	CheckOutDate    string `json:"check_out_date" validate:"required"`
	GuestCount      int    `json:"guest_count" validate:"required,min=1"`
	SpecialRequests string `json:"special_requests"`
	PaymentMethod   string `json:"payment_method" validate:"omitempty,oneof=CREDIT_CARD DEBIT_CARD QR_PAYMENT BANK_TRANSFER CASH"`
}

// CreateBooking is the guest self-service path: payment is simulated, so the
// booking confirms immediately.
func CreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid room ID"})
	}
	checkIn, err := time.Parse("2006-01-02", req.CheckInDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "check_in_date must be YYYY-MM-DD"})
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOutDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "check_out_date must be YYYY-MM-DD"})
	}

	username := currentUsername(c)
	booking, err := bookingService().Create(username, services.CreateBookingInput{
		RoomID:          roomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		GuestCount:      req.GuestCount,
		SpecialRequests: req.SpecialRequests,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	var user models.User
	if database.DB.First(&user, "username = ?", username).Error == nil {
		details := fmt.Sprintf("Room booking from %s to %s",
			booking.CheckInDate.Format("2006-01-02"), booking.CheckOutDate.Format("2006-01-02"))
		go notifications.SendEmail(user.FullName(), user.Email,
			"Booking Confirmed - "+booking.BookingReference,
			notifications.BookingConfirmationBody(user.FirstName, booking.BookingReference, details))
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func GetMyBookings(c *fiber.Ctx) error {
	bookings, err := bookingService().UserBookings(currentUsername(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(bookings)
}

func GetBookingByReference(c *fiber.Ctx) error {
	booking, err := bookingService().ByReference(c.Params("reference"))
	if err != nil {
		return respondServiceError(c, err)
	}
	// Guests only see their own bookings. Staff look up anyone's.
	role := middleware.ClaimRole(c)
	if role == models.RoleGuest {
		var user models.User
		if err := database.DB.First(&user, "username = ?", currentUsername(c)).Error; err != nil ||
			booking.UserID != user.ID {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "booking not found"})
		}
	}
	return c.JSON(booking)
}

// CancelMyBooking enforces the 24-hour cutoff inside the service.
func CancelMyBooking(c *fiber.Ctx) error {
	if err := bookingService().Cancel(c.Params("reference"), currentUsername(c)); err != nil {
		return respondServiceError(c, err)
	}

	var user models.User
	if database.DB.First(&user, "username = ?", currentUsername(c)).Error == nil {
		go notifications.SendEmail(user.FullName(), user.Email,
			"Booking Cancelled - "+c.Params("reference"),
			notifications.BookingCancellationBody(user.FirstName, c.Params("reference")))
	}

	return c.JSON(fiber.Map{"message": "Booking cancelled successfully"})
}

type CreateRefundRequestRequest struct {
	BookingReference  string `json:"booking_reference" validate:"required"`
	BookingType       string `json:"booking_type" validate:"required,oneof=ROOM EVENT"`
	RefundAmount      string `json:"refund_amount" validate:"required"`
	BankAccountNumber string `json:"bank_account_number" validate:"required"`
	BankName          string `json:"bank_name" validate:"required"`
	BankBranch        string `json:"bank_branch"`
	AccountHolderName string `json:"account_holder_name" validate:"required"`
	Reason            string `json:"reason" validate:"required"`
}

func CreateRefundRequest(c *fiber.Ctx) error {
	var req CreateRefundRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	amount, err := parseAmount(req.RefundAmount)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "refund_amount must be a number"})
	}

	refund, err := refundService().Create(currentUsername(c), services.CreateRefundRequestInput{
		BookingReference:  req.BookingReference,
		BookingType:       req.BookingType,
		RefundAmount:      amount,
		BankAccountNumber: req.BankAccountNumber,
		BankName:          req.BankName,
		BankBranch:        req.BankBranch,
		AccountHolderName: req.AccountHolderName,
		Reason:            req.Reason,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(refund)
}

func GetMyRefundRequests(c *fiber.Ctx) error {
	refunds, err := refundService().ForUser(currentUsername(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(refunds)
}
