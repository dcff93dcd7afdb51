package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PaymentMethodCreditCard   = "CREDIT_CARD"
	PaymentMethodDebitCard    = "DEBIT_CARD"
	PaymentMethodQRPayment    = "QR_PAYMENT"
	PaymentMethodBankTransfer = "BANK_TRANSFER"
	PaymentMethodCash         = "CASH"
)

const (
	PaymentStatusPending           = "PENDING"
	PaymentStatusCompleted         = "COMPLETED"
	PaymentStatusFailed            = "FAILED"
	PaymentStatusRefunded          = "REFUNDED"
	PaymentStatusPartiallyRefunded = "PARTIALLY_REFUNDED"
)

// Payment belongs to exactly one of a room booking or an event booking.
// Postgres cannot express the cross-column invariant, so the services layer
// enforces it on create.
type Payment struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID      *uuid.UUID `json:"booking_id"`
	EventBookingID *uuid.UUID `json:"event_booking_id"`

	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"size:20;not null" json:"payment_method"`
	PaymentStatus string          `gorm:"size:20;not null;default:'PENDING'" json:"payment_status"`
	TransactionID string          `gorm:"size:50;unique" json:"transaction_id"`
	PaymentDate   *time.Time      `json:"payment_date"`
	ReceiptURL    *string         `gorm:"size:255" json:"receipt_url"`

	RefundAmount *decimal.Decimal `gorm:"type:numeric(12,2)" json:"refund_amount"`
	RefundReason *string          `gorm:"type:text" json:"refund_reason"`
	RefundDate   *time.Time       `json:"refund_date"`

	ProcessedBy string `gorm:"size:50" json:"processed_by"`
	Notes       string `gorm:"type:text" json:"notes"`

	Booking      *Booking      `gorm:"foreignkey:BookingID" json:"booking,omitempty"`
	EventBooking *EventBooking `gorm:"foreignkey:EventBookingID" json:"event_booking,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
