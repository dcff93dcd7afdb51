package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/goldenpalm/resort_backend/database"
	"github.com/goldenpalm/resort_backend/middleware"
	"github.com/goldenpalm/resort_backend/services"
	"github.com/goldenpalm/resort_backend/websocket"
)

var validate = validator.New()

func store() services.Store {
	return services.NewGormStore(database.DB)
}

func notificationService() *services.NotificationService {
	return services.NewNotificationService(store(), nil, websocket.Hub{})
}

func bookingService() *services.BookingService {
	return services.NewBookingService(store(), nil, notificationService().NotifyFunc())
}

func eventBookingService() *services.EventBookingService {
	return services.NewEventBookingService(store(), nil, notificationService().NotifyFunc())
}

func paymentService() *services.PaymentService {
	return services.NewPaymentService(store(), nil)
}

func refundService() *services.RefundService {
	return services.NewRefundService(store(), nil, notificationService().NotifyFunc())
}

func currentUsername(c *fiber.Ctx) string {
	return middleware.ClaimUsername(c)
}

// parseAmount accepts money as a decimal string so float JSON rounding never
// touches stored amounts.
func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// respondServiceError maps service error taxonomy onto HTTP statuses: missing
// records become 404, interval conflicts 409, input and lifecycle problems
// 400, everything else a logged 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	var ierr *services.IllegalStateError
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &verr), errors.As(err, &ierr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
