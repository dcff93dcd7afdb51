package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventBookingStatusPending    = "PENDING"
	EventBookingStatusConfirmed  = "CONFIRMED"
	EventBookingStatusInProgress = "IN_PROGRESS"
	EventBookingStatusCompleted  = "COMPLETED"
	EventBookingStatusCancelled  = "CANCELLED"
)

// EventBooking reserves an event space for a single calendar date between two
// wall-clock times ("HH:MM"). Events never span midnight.
type EventBooking struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingReference string          `gorm:"size:20;not null;unique" json:"booking_reference"`
	UserID           uuid.UUID       `gorm:"not null" json:"user_id"`
	EventSpaceID     uuid.UUID       `gorm:"not null" json:"event_space_id"`
	EventType        string          `gorm:"size:50" json:"event_type"`
	EventDate        time.Time       `gorm:"type:date;not null" json:"event_date"`
	StartTime        string          `gorm:"size:5;not null" json:"start_time"`
	EndTime          string          `gorm:"size:5;not null" json:"end_time"`
	ExpectedGuests   int             `gorm:"not null" json:"expected_guests"`
	TotalAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	Status           string          `gorm:"size:20;not null;default:'PENDING'" json:"status"`

	SetupRequirements   string `gorm:"type:text" json:"setup_requirements"`
	CateringRequired    bool   `gorm:"default:false" json:"catering_required"`
	AudioVisualRequired bool   `gorm:"default:false" json:"audio_visual_required"`
	SpecialRequests     string `gorm:"type:text" json:"special_requests"`
	ContactPerson       string `gorm:"size:100" json:"contact_person"`
	ContactPhone        string `gorm:"size:20" json:"contact_phone"`
	ContactEmail        string `gorm:"size:255" json:"contact_email"`

	User       User       `gorm:"foreignkey:UserID" json:"user,omitempty"`
	EventSpace EventSpace `gorm:"foreignkey:EventSpaceID" json:"event_space,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b EventBooking) IsTerminal() bool {
	return b.Status == EventBookingStatusCompleted || b.Status == EventBookingStatusCancelled
}
