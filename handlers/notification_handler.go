package handlers

import (
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	config "github.com/goldenpalm/resort_backend/configs"
	"github.com/goldenpalm/resort_backend/database"
	"github.com/goldenpalm/resort_backend/models"
	ws "github.com/goldenpalm/resort_backend/websocket"
)

func GetMyNotifications(c *fiber.Ctx) error {
	items, err := notificationService().ForUser(currentUsername(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(items)
}

func GetUnreadNotificationCount(c *fiber.Ctx) error {
	count, err := notificationService().UnreadCount(currentUsername(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"unread_count": count})
}

func MarkNotificationRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("notificationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid notification ID"})
	}
	n, err := notificationService().MarkRead(id, currentUsername(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(n)
}

func MarkAllNotificationsRead(c *fiber.Ctx) error {
	count, err := notificationService().MarkAllRead(currentUsername(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"marked_read": count})
}

type SendNotificationRequest struct {
	Username string `json:"username" validate:"required"`
	Type     string `json:"type" validate:"omitempty,oneof=GENERAL BOOKING_UPDATE PAYMENT_REMINDER REFUND_APPROVED"`
	Title    string `json:"title" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

// SendNotification lets staff push an ad-hoc message to a guest.
func SendNotification(c *fiber.Ctx) error {
	var req SendNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	ntype := req.Type
	if ntype == "" {
		ntype = models.NotificationTypeGeneral
	}

	n, err := notificationService().Send(req.Username, currentUsername(c), ntype, req.Title, req.Message)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(n)
}

type wsAuthMessage struct {
	Type  string `json:"type"`
	Token string `json:"token"`
}

// ServeWs upgrades the connection and waits for an auth message carrying the
// login JWT before registering the client for live pushes.
func ServeWs(c *websocket.Conn) {
	var msg wsAuthMessage
	if err := c.ReadJSON(&msg); err != nil || msg.Type != "auth" {
		c.WriteJSON(fiber.Map{"error": "Expected auth message"})
		c.Close()
		return
	}

	token, err := jwt.Parse(msg.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.Close()
		return
	}
	userIDStr, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.Close()
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.Close()
		return
	}

	client := &ws.Client{UserID: userID, Conn: c}
	ws.Register <- client
	defer func() {
		ws.Unregister <- client
		c.Close()
	}()

	c.WriteJSON(fiber.Map{"type": "connected"})

	// Keep reading so pings and closes are handled; inbound payloads are
	// ignored.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			log.Printf("WebSocket closed for %s: %v", userID, err)
			break
		}
	}
}
