package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/goldenpalm/resort_backend/models"
	"github.com/goldenpalm/resort_backend/notifications"
)

func GetPendingRefundRequests(c *fiber.Ctx) error {
	refunds, err := refundService().Pending()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(refunds)
}

func GetAllRefundRequests(c *fiber.Ctx) error {
	refunds, err := refundService().All()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(refunds)
}

func GetRefundRequest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("refundId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid refund request ID"})
	}
	refund, err := refundService().ByID(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(refund)
}

// ApproveRefundRequest cancels the booking and marks the payment refunded in
// the same transaction, then notifies the guest.
func ApproveRefundRequest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("refundId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid refund request ID"})
	}
	refund, err := refundService().Approve(id, currentUsername(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	sendRefundApprovedEmail(refund)

	return c.JSON(refund)
}

type RefundRejectionRequest struct {
	Notes string `json:"notes" validate:"required"`
}

func RejectRefundRequest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("refundId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid refund request ID"})
	}

	var req RefundRejectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	refund, err := refundService().Reject(id, currentUsername(c), req.Notes)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(refund)
}

func sendRefundApprovedEmail(refund *models.RefundRequest) {
	user, err := store().Users().FindByID(refund.UserID)
	if err != nil {
		return
	}
	go notifications.SendEmail(user.FullName(), user.Email,
		"Refund Approved - "+refund.BookingReference,
		notifications.RefundApprovedBody(user.FirstName, refund.BookingReference,
			refund.RefundAmount.StringFixed(2)))
}
