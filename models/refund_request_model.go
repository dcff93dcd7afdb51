package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	RefundStatusPending   = "PENDING"
	RefundStatusApproved  = "APPROVED"
	RefundStatusRejected  = "REJECTED"
	RefundStatusCompleted = "COMPLETED"
)

type RefundRequest struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID  `gorm:"not null" json:"user_id"`
	BookingID        *uuid.UUID `json:"booking_id"`
	EventBookingID   *uuid.UUID `json:"event_booking_id"`
	BookingReference string     `gorm:"size:20;not null" json:"booking_reference"`

	RefundAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"refund_amount"`
	BankAccountNumber string          `gorm:"size:50" json:"bank_account_number"`
	BankName          string          `gorm:"size:100" json:"bank_name"`
	BankBranch        string          `gorm:"size:100" json:"bank_branch"`
	AccountHolderName string          `gorm:"size:100" json:"account_holder_name"`

	Status      string     `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	Reason      string     `gorm:"type:text" json:"reason"`
	Notes       string     `gorm:"type:text" json:"notes"`
	ProcessedBy string     `gorm:"size:50" json:"processed_by"`
	ProcessedAt *time.Time `json:"processed_at"`

	User         User          `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Booking      *Booking      `gorm:"foreignkey:BookingID" json:"booking,omitempty"`
	EventBooking *EventBooking `gorm:"foreignkey:EventBookingID" json:"event_booking,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
