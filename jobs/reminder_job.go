package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/goldenpalm/resort_backend/database"
	"github.com/goldenpalm/resort_backend/models"
	"github.com/goldenpalm/resort_backend/notifications"
	"github.com/goldenpalm/resort_backend/services"
	"github.com/goldenpalm/resort_backend/websocket"
)

// SendPaymentReminders nudges guests whose payment has sat PENDING for more
// than 24 hours. At most one reminder per payment per day.
func SendPaymentReminders() {
	log.Println("Running job: SendPaymentReminders...")

	cutoff := time.Now().Add(-24 * time.Hour)

	var pendingPayments []models.Payment
	err := database.DB.
		Preload("Booking").
		Preload("EventBooking").
		Where("payment_status = ? AND created_at < ?", models.PaymentStatusPending, cutoff).
		Find(&pendingPayments).Error
	if err != nil {
		log.Printf("Error checking for pending payments: %v", err)
		return
	}
	if len(pendingPayments) == 0 {
		return
	}

	store := services.NewGormStore(database.DB)
	notify := services.NewNotificationService(store, nil, websocket.Hub{})

	sent := 0
	for _, payment := range pendingPayments {
		var recipient models.User
		var reference, refType string
		var refUUID uuid.UUID

		switch {
		case payment.Booking != nil:
			reference = payment.Booking.BookingReference
			refUUID = payment.Booking.ID
			refType = models.ReferenceTypeBooking
			if err := database.DB.First(&recipient, "id = ?", payment.Booking.UserID).Error; err != nil {
				continue
			}
		case payment.EventBooking != nil:
			reference = payment.EventBooking.BookingReference
			refUUID = payment.EventBooking.ID
			refType = models.ReferenceTypeEventBooking
			if err := database.DB.First(&recipient, "id = ?", payment.EventBooking.UserID).Error; err != nil {
				continue
			}
		default:
			continue
		}

		var already int64
		database.DB.Model(&models.Notification{}).
			Where("user_id = ? AND type = ? AND reference_id = ? AND created_at > ?",
				recipient.ID, models.NotificationTypePaymentReminder, refUUID, time.Now().Add(-24*time.Hour)).
			Count(&already)
		if already > 0 {
			continue
		}

		err := notify.Notify(recipient.ID, models.NotificationTypePaymentReminder,
			"Payment pending for "+reference,
			fmt.Sprintf("Your payment of LKR %s for booking %s is still pending. Please complete it to secure your reservation.",
				payment.Amount.StringFixed(2), reference),
			&refUUID, refType)
		if err != nil {
			log.Printf("Error creating payment reminder for %s: %v", reference, err)
			continue
		}

		go notifications.SendEmail(recipient.FullName(), recipient.Email,
			"Payment reminder - Golden Palm Resort",
			fmt.Sprintf("<p>Dear %s,</p><p>Your payment of LKR %s for booking <strong>%s</strong> is still pending.</p>",
				recipient.FullName(), payment.Amount.StringFixed(2), reference))
		sent++
	}

	if sent > 0 {
		log.Printf("Sent %d payment reminder(s).", sent)
	}
}
