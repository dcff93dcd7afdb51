package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goldenpalm/resort_backend/handlers"
	"github.com/goldenpalm/resort_backend/middleware"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	payments := api.Group("/payments", middleware.Protected(), middleware.PaymentOfficerRequired())
	payments.Get("", handlers.GetPayments)
	payments.Get("/statistics", handlers.GetPaymentStatistics)
	payments.Get("/report", handlers.GetPaymentReport)
	payments.Get("/:paymentId", handlers.GetPayment)
	payments.Put("/:paymentId/status", handlers.UpdatePaymentStatus)
	payments.Post("/:paymentId/refund", handlers.ProcessPaymentRefund)
	payments.Post("/:paymentId/receipt", handlers.GeneratePaymentReceipt)

	refunds := api.Group("/staff/refund-requests", middleware.Protected(), middleware.PaymentOfficerRequired())
	refunds.Get("", handlers.GetAllRefundRequests)
	refunds.Get("/pending", handlers.GetPendingRefundRequests)
	refunds.Get("/:refundId", handlers.GetRefundRequest)
	refunds.Post("/:refundId/approve", handlers.ApproveRefundRequest)
	refunds.Post("/:refundId/reject", handlers.RejectRefundRequest)
}
