package handlers

import (
	"net/url"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	config "github.com/goldenpalm/resort_backend/configs"
	"github.com/goldenpalm/resort_backend/database"
	"github.com/goldenpalm/resort_backend/models"
)

const uploadFolder = "golden_palm_rooms"

// GenerateUploadSignature creates a secure signature so the frontend can
// upload room and event-space photos straight to Cloudinary.
func GenerateUploadSignature(c *fiber.Ctx) error {
	cloudinaryURL := config.Config("CLOUDINARY_URL")
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize Cloudinary"})
	}

	parsedURL, err := url.Parse(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to parse Cloudinary URL"})
	}
	secret, _ := parsedURL.User.Password()

	paramsToSign, err := api.StructToParams(uploader.UploadParams{
		Folder: uploadFolder,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare signature params"})
	}

	timestamp := time.Now().Unix()
	paramsToSign.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(paramsToSign, secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign upload params"})
	}

	apiKey := cld.Config.Cloud.APIKey

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"api_key":   apiKey,
		"folder":    uploadFolder,
	})
}

type AttachPhotoRequest struct {
	RoomID       *string `json:"room_id" validate:"omitempty,uuid4"`
	EventSpaceID *string `json:"event_space_id" validate:"omitempty,uuid4"`
	URL          string  `json:"url" validate:"required,url"`
	PublicID     string  `json:"public_id"`
	Caption      string  `json:"caption"`
}

// AttachPhoto records an uploaded photo against a room or an event space,
// exactly one of the two.
func AttachPhoto(c *fiber.Ctx) error {
	var req AttachPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if (req.RoomID == nil) == (req.EventSpaceID == nil) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Provide exactly one of room_id or event_space_id"})
	}

	photo := models.Photo{
		URL:        req.URL,
		PublicID:   req.PublicID,
		Caption:    req.Caption,
		UploadedBy: currentUsername(c),
	}

	if req.RoomID != nil {
		id, err := uuid.Parse(*req.RoomID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid room ID"})
		}
		var room models.Room
		if err := database.DB.First(&room, "id = ?", id).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
		}
		photo.RoomID = &id
	} else {
		id, err := uuid.Parse(*req.EventSpaceID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event space ID"})
		}
		var space models.EventSpace
		if err := database.DB.First(&space, "id = ?", id).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event space not found"})
		}
		photo.EventSpaceID = &id
	}

	if err := database.DB.Create(&photo).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save photo"})
	}
	return c.Status(fiber.StatusCreated).JSON(photo)
}

func DeletePhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("photoId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid photo ID"})
	}
	var photo models.Photo
	if err := database.DB.First(&photo, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Photo not found"})
	}
	if err := database.DB.Delete(&photo).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete photo"})
	}
	return c.JSON(fiber.Map{"message": "Photo deleted"})
}
