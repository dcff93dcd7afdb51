package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event-space status is a coarse availability hint for browsing. Interval
// overlap against event bookings is the source of truth for availability.
const (
	EventSpaceStatusAvailable   = "AVAILABLE"
	EventSpaceStatusBooked      = "BOOKED"
	EventSpaceStatusMaintenance = "MAINTENANCE"
	EventSpaceStatusBlocked     = "BLOCKED"
)

type EventSpace struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name                 string          `gorm:"size:100;not null;unique" json:"name"`
	Description          string          `gorm:"type:text" json:"description"`
	Capacity             int             `gorm:"not null" json:"capacity"`
	BasePrice            decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"base_price"`
	SetupTypes           string          `gorm:"size:255" json:"setup_types"`
	Amenities            string          `gorm:"type:text" json:"amenities"`
	FloorNumber          int             `json:"floor_number"`
	Dimensions           string          `gorm:"size:50" json:"dimensions"`
	CateringAvailable    bool            `gorm:"default:false" json:"catering_available"`
	AudioVisualEquipment bool            `gorm:"default:false" json:"audio_visual_equipment"`
	ParkingAvailable     bool            `gorm:"default:false" json:"parking_available"`
	Status               string          `gorm:"size:20;not null;default:'AVAILABLE'" json:"status"`
	IsActive             bool            `gorm:"default:true" json:"is_active"`

	Photos []Photo `gorm:"foreignkey:EventSpaceID" json:"photos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
