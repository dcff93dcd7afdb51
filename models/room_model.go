package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	RoomStatusAvailable   = "AVAILABLE"
	RoomStatusOccupied    = "OCCUPIED"
	RoomStatusMaintenance = "MAINTENANCE"
	RoomStatusBlocked     = "BLOCKED"
)

type Room struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RoomNumber  string          `gorm:"size:10;not null;unique" json:"room_number"`
	RoomType    string          `gorm:"size:50;not null" json:"room_type"`
	FloorNumber int             `gorm:"not null" json:"floor_number"`
	BasePrice   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"base_price"`
	Capacity    int             `gorm:"not null" json:"capacity"`
	Description string          `gorm:"type:text" json:"description"`
	Amenities   string          `gorm:"type:text" json:"amenities"`
	Status      string          `gorm:"size:20;not null;default:'AVAILABLE'" json:"status"`
	IsActive    bool            `gorm:"default:true" json:"is_active"`

	Photos []Photo `gorm:"foreignkey:RoomID" json:"photos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
