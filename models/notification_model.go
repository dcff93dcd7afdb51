package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationTypePaymentReminder = "PAYMENT_REMINDER"
	NotificationTypeRefundApproved  = "REFUND_APPROVED"
	NotificationTypeGeneral         = "GENERAL"
	NotificationTypeBookingUpdate   = "BOOKING_UPDATE"
)

const (
	ReferenceTypeBooking      = "BOOKING"
	ReferenceTypeEventBooking = "EVENT_BOOKING"
	ReferenceTypeRefund       = "REFUND"
)

type Notification struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID  uuid.UUID `gorm:"not null" json:"user_id"`
	Type    string    `gorm:"size:30;not null" json:"type"`
	Title   string    `gorm:"size:255;not null" json:"title"`
	Message string    `gorm:"type:text" json:"message"`

	ReferenceID   *uuid.UUID `json:"reference_id"`
	ReferenceType *string    `gorm:"size:20" json:"reference_type"`

	// ReadAt is set exactly when IsRead flips to true.
	IsRead bool       `gorm:"default:false" json:"is_read"`
	ReadAt *time.Time `json:"read_at"`
	SentBy string     `gorm:"size:50" json:"sent_by"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
