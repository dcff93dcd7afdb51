package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goldenpalm/resort_backend/database"
	"github.com/goldenpalm/resort_backend/models"
)

func GetRooms(c *fiber.Ctx) error {
	var rooms []models.Room
	query := database.DB.Preload("Photos").Where("is_active = ?", true)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if roomType := c.Query("type"); roomType != "" {
		query = query.Where("room_type = ?", roomType)
	}
	if err := query.Order("room_number").Find(&rooms).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch rooms"})
	}
	return c.JSON(rooms)
}

func GetRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("roomId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid room ID"})
	}
	var room models.Room
	if err := database.DB.Preload("Photos").First(&room, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	}
	return c.JSON(room)
}

// GetAvailableRooms lists rooms free for the requested interval. Query
// params: check_in, check_out (YYYY-MM-DD) and optional guests.
func GetAvailableRooms(c *fiber.Ctx) error {
	checkIn, err := time.Parse("2006-01-02", c.Query("check_in"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "check_in must be YYYY-MM-DD"})
	}
	checkOut, err := time.Parse("2006-01-02", c.Query("check_out"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "check_out must be YYYY-MM-DD"})
	}
	guests := c.QueryInt("guests", 1)

	rooms, err := bookingService().AvailableRooms(checkIn, checkOut, guests)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(rooms)
}

type RoomRequest struct {
	RoomNumber  string          `json:"room_number" validate:"required"`
	RoomType    string          `json:"room_type" validate:"required"`
	FloorNumber int             `json:"floor_number"`
	BasePrice   decimal.Decimal `json:"base_price" validate:"required"`
	Capacity    int             `json:"capacity" validate:"required,min=1"`
	Description string          `json:"description"`
	Amenities   string          `json:"amenities"`
}

func CreateRoom(c *fiber.Ctx) error {
	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.BasePrice.LessThanOrEqual(decimal.Zero) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "base_price must be greater than 0"})
	}

	room := models.Room{
		RoomNumber:  req.RoomNumber,
		RoomType:    req.RoomType,
		FloorNumber: req.FloorNumber,
		BasePrice:   req.BasePrice,
		Capacity:    req.Capacity,
		Description: req.Description,
		Amenities:   req.Amenities,
		Status:      models.RoomStatusAvailable,
		IsActive:    true,
	}
	if err := database.DB.Create(&room).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Room number already exists"})
	}
	return c.Status(fiber.StatusCreated).JSON(room)
}

func UpdateRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("roomId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid room ID"})
	}

	var room models.Room
	if err := database.DB.First(&room, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	}

	type updateRequest struct {
		RoomType    *string          `json:"room_type"`
		FloorNumber *int             `json:"floor_number"`
		BasePrice   *decimal.Decimal `json:"base_price"`
		Capacity    *int             `json:"capacity"`
		Description *string          `json:"description"`
		Amenities   *string          `json:"amenities"`
		IsActive    *bool            `json:"is_active"`
	}
	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.RoomType != nil {
		room.RoomType = *req.RoomType
	}
	if req.FloorNumber != nil {
		room.FloorNumber = *req.FloorNumber
	}
	if req.BasePrice != nil {
		if req.BasePrice.LessThanOrEqual(decimal.Zero) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "base_price must be greater than 0"})
		}
		room.BasePrice = *req.BasePrice
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "capacity must be at least 1"})
		}
		room.Capacity = *req.Capacity
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.Amenities != nil {
		room.Amenities = *req.Amenities
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&room).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update room"})
	}
	return c.JSON(room)
}

type RoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE OCCUPIED MAINTENANCE BLOCKED"`
}

// UpdateRoomStatus is the manager's manual override, used for maintenance
// blocks. Lifecycle transitions manage the AVAILABLE/OCCUPIED flips.
func UpdateRoomStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("roomId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid room ID"})
	}

	var req RoomStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var room models.Room
	if err := database.DB.First(&room, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	}
	room.Status = req.Status
	if err := database.DB.Save(&room).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update room status"})
	}
	return c.JSON(room)
}
