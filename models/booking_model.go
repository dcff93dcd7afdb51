package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	BookingStatusPending    = "PENDING"
	BookingStatusConfirmed  = "CONFIRMED"
	BookingStatusCheckedIn  = "CHECKED_IN"
	BookingStatusCheckedOut = "CHECKED_OUT"
	BookingStatusCancelled  = "CANCELLED"
)

type Booking struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingReference string          `gorm:"size:20;not null;unique" json:"booking_reference"`
	UserID           uuid.UUID       `gorm:"not null" json:"user_id"`
	RoomID           uuid.UUID       `gorm:"not null" json:"room_id"`
	CheckInDate      time.Time       `gorm:"type:date;not null" json:"check_in_date"`
	CheckOutDate     time.Time       `gorm:"type:date;not null" json:"check_out_date"`
	GuestCount       int             `gorm:"not null" json:"guest_count"`
	TotalAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	Status           string          `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	SpecialRequests  string          `gorm:"type:text" json:"special_requests"`
	CreatedByID      *uuid.UUID      `json:"created_by_id"`

	User      User  `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Room      Room  `gorm:"foreignkey:RoomID" json:"room,omitempty"`
	CreatedBy *User `gorm:"foreignkey:CreatedByID" json:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsTerminal reports whether no further lifecycle transition is allowed.
func (b Booking) IsTerminal() bool {
	return b.Status == BookingStatusCheckedOut || b.Status == BookingStatusCancelled
}
