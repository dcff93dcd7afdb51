package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/goldenpalm/resort_backend/handlers"
	"github.com/goldenpalm/resort_backend/middleware"
)

func NotificationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	notifs := api.Group("/notifications", middleware.Protected())
	notifs.Get("", handlers.GetMyNotifications)
	notifs.Get("/unread-count", handlers.GetUnreadNotificationCount)
	notifs.Put("/read-all", handlers.MarkAllNotificationsRead)
	notifs.Put("/:notificationId/read", handlers.MarkNotificationRead)

	staff := api.Group("/staff/notifications", middleware.Protected(), middleware.StaffRequired())
	staff.Post("/send", handlers.SendNotification)

	// The auth handshake happens over the socket itself, so the upgrade
	// endpoint stays outside the JWT middleware.
	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(handlers.ServeWs))
}
