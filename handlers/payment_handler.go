package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/goldenpalm/resort_backend/database"
	"github.com/goldenpalm/resort_backend/models"
	"github.com/goldenpalm/resort_backend/services"
)

func GetPayments(c *fiber.Ctx) error {
	svc := paymentService()
	if status := c.Query("status"); status != "" {
		payments, err := svc.ByStatus(status)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(payments)
	}
	payments, err := svc.All()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(payments)
}

func GetPayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("paymentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID"})
	}
	payment, err := paymentService().ByID(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(payment)
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING COMPLETED FAILED"`
}

func UpdatePaymentStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("paymentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID"})
	}

	var req UpdatePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	payment, err := paymentService().UpdateStatus(id, req.Status, currentUsername(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(payment)
}

type ProcessRefundRequest struct {
	Amount string `json:"amount" validate:"required"`
	Reason string `json:"reason" validate:"required"`
}

// ProcessPaymentRefund refunds directly against a payment, outside the
// guest-initiated refund request flow.
func ProcessPaymentRefund(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("paymentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID"})
	}

	var req ProcessRefundRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "amount must be a number"})
	}

	payment, err := paymentService().ProcessRefund(id, amount, req.Reason, currentUsername(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(payment)
}

// GetPaymentReport aggregates completed payments over a from/to window.
func GetPaymentReport(c *fiber.Ctx) error {
	from, to, err := parseReportWindow(c)
	if err != nil {
		return respondServiceError(c, err)
	}
	report, err := paymentService().Report(from, to)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(report)
}

// GeneratePaymentReceipt renders the PDF in the background and stores the
// upload URL on the payment. Clients poll the payment for receipt_url.
func GeneratePaymentReceipt(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("paymentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID"})
	}
	if _, err := paymentService().ByID(id); err != nil {
		return respondServiceError(c, err)
	}

	go services.GenerateReceipt(store(), id)

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Receipt generation started",
	})
}

func GetPaymentStatistics(c *fiber.Ctx) error {
	var pending, completed, refunded int64
	database.DB.Model(&models.Payment{}).
		Where("payment_status = ?", models.PaymentStatusPending).Count(&pending)
	database.DB.Model(&models.Payment{}).
		Where("payment_status = ?", models.PaymentStatusCompleted).Count(&completed)
	database.DB.Model(&models.Payment{}).
		Where("payment_status IN ?", []string{models.PaymentStatusRefunded, models.PaymentStatusPartiallyRefunded}).
		Count(&refunded)

	payments, err := store().Payments().ListAll()
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"pending_count":   pending,
		"completed_count": completed,
		"refunded_count":  refunded,
		"total_revenue":   services.TotalRevenue(payments),
	})
}
