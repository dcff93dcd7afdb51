package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/goldenpalm/resort_backend/database"
	"github.com/goldenpalm/resort_backend/middleware"
	"github.com/goldenpalm/resort_backend/models"
	"github.com/goldenpalm/resort_backend/notifications"
	"github.com/goldenpalm/resort_backend/services"
)

type CreateEventBookingRequest struct {
	EventSpaceID        string `json:"event_space_id" validate:"required,uuid4"`
	EventType           string `json:"event_type" validate:"required,oneof=WEDDING CONFERENCE BIRTHDAY CORPORATE EXHIBITION OTHER"`
	EventDate           string `json:"event_date" validate:"required"`
	StartTime           string `json:"start_time" validate:"required"`
	EndTime             string `json:"end_time" validate:"required"`
	ExpectedGuests      int    `json:"expected_guests" validate:"required,min=1"`
	SetupRequirements   string `json:"setup_requirements"`
	CateringRequired    bool   `json:"catering_required"`
	AudioVisualRequired bool   `json:"audio_visual_required"`
	SpecialRequests     string `json:"special_requests"`
	ContactPerson       string `json:"contact_person" validate:"required"`
	ContactPhone        string `json:"contact_phone" validate:"required"`
	ContactEmail        string `json:"contact_email" validate:"required,email"`
	PaymentMethod       string `json:"payment_method" validate:"omitempty,oneof=CREDIT_CARD DEBIT_CARD QR_PAYMENT BANK_TRANSFER CASH"`
}

// CreateEventBooking starts the staff-mediated flow: the booking comes back
// PENDING and waits for a manager to confirm it.
func CreateEventBooking(c *fiber.Ctx) error {
	var req CreateEventBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	spaceID, err := uuid.Parse(req.EventSpaceID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event space ID"})
	}
	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "event_date must be YYYY-MM-DD"})
	}

	booking, err := eventBookingService().Create(currentUsername(c), services.CreateEventBookingInput{
		EventSpaceID:        spaceID,
		EventType:           req.EventType,
		EventDate:           eventDate,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		ExpectedGuests:      req.ExpectedGuests,
		SetupRequirements:   req.SetupRequirements,
		CateringRequired:    req.CateringRequired,
		AudioVisualRequired: req.AudioVisualRequired,
		SpecialRequests:     req.SpecialRequests,
		ContactPerson:       req.ContactPerson,
		ContactPhone:        req.ContactPhone,
		ContactEmail:        req.ContactEmail,
		PaymentMethod:       req.PaymentMethod,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

func GetMyEventBookings(c *fiber.Ctx) error {
	bookings, err := eventBookingService().UserBookings(currentUsername(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(bookings)
}

func GetEventBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}
	booking, err := eventBookingService().ByID(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if middleware.ClaimRole(c) == models.RoleGuest {
		var user models.User
		if err := database.DB.First(&user, "username = ?", currentUsername(c)).Error; err != nil ||
			booking.UserID != user.ID {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event booking not found"})
		}
	}
	return c.JSON(booking)
}

func CancelMyEventBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}
	booking, err := eventBookingService().Cancel(id, currentUsername(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	var user models.User
	if database.DB.First(&user, "username = ?", currentUsername(c)).Error == nil {
		go notifications.SendEmail(user.FullName(), user.Email,
			"Event Booking Cancelled - "+booking.BookingReference,
			notifications.BookingCancellationBody(user.FirstName, booking.BookingReference))
	}

	return c.JSON(booking)
}

// GetAvailableEventSpaces lists spaces free for the requested slot. Query
// params: date (YYYY-MM-DD), start, end (HH:MM) and optional guests.
func GetAvailableEventSpaces(c *fiber.Ctx) error {
	eventDate, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}
	start := c.Query("start")
	end := c.Query("end")
	guests := c.QueryInt("guests", 1)

	spaces, err := eventBookingService().AvailableSpaces(eventDate, start, end, guests)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(spaces)
}

func GetEventSpaces(c *fiber.Ctx) error {
	var spaces []models.EventSpace
	query := database.DB.Preload("Photos").Where("is_active = ?", true)
	if c.QueryBool("catering") {
		query = query.Where("catering_available = ?", true)
	}
	if c.QueryBool("audio_visual") {
		query = query.Where("audio_visual_equipment = ?", true)
	}
	if guests := c.QueryInt("guests", 0); guests > 0 {
		query = query.Where("capacity >= ?", guests)
	}
	if err := query.Order("name").Find(&spaces).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch event spaces"})
	}
	return c.JSON(spaces)
}

func GetEventSpace(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("spaceId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event space ID"})
	}
	var space models.EventSpace
	if err := database.DB.Preload("Photos").First(&space, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event space not found"})
	}
	return c.JSON(space)
}

type EventSpaceRequest struct {
	Name                 string `json:"name" validate:"required"`
	Description          string `json:"description"`
	Capacity             int    `json:"capacity" validate:"required,min=1"`
	BasePrice            string `json:"base_price" validate:"required"`
	SetupTypes           string `json:"setup_types"`
	Amenities            string `json:"amenities"`
	FloorNumber          int    `json:"floor_number"`
	Dimensions           string `json:"dimensions"`
	CateringAvailable    bool   `json:"catering_available"`
	AudioVisualEquipment bool   `json:"audio_visual_equipment"`
	ParkingAvailable     bool   `json:"parking_available"`
}

func CreateEventSpace(c *fiber.Ctx) error {
	var req EventSpaceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	price, err := parseAmount(req.BasePrice)
	if err != nil || price.Sign() <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "base_price must be a positive number"})
	}

	space := models.EventSpace{
		Name:                 req.Name,
		Description:          req.Description,
		Capacity:             req.Capacity,
		BasePrice:            price,
		SetupTypes:           req.SetupTypes,
		Amenities:            req.Amenities,
		FloorNumber:          req.FloorNumber,
		Dimensions:           req.Dimensions,
		CateringAvailable:    req.CateringAvailable,
		AudioVisualEquipment: req.AudioVisualEquipment,
		ParkingAvailable:     req.ParkingAvailable,
		Status:               models.EventSpaceStatusAvailable,
		IsActive:             true,
	}
	if err := database.DB.Create(&space).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Event space name already exists"})
	}
	return c.Status(fiber.StatusCreated).JSON(space)
}

func UpdateEventSpaceStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("spaceId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event space ID"})
	}

	var req struct {
		Status string `json:"status" validate:"required,oneof=AVAILABLE BOOKED MAINTENANCE BLOCKED"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var space models.EventSpace
	if err := database.DB.First(&space, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event space not found"})
	}
	space.Status = req.Status
	if err := database.DB.Save(&space).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update event space"})
	}
	return c.JSON(space)
}
