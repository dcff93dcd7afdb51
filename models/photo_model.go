package models

import (
	"time"

	"github.com/google/uuid"
)

// Photo is an uploaded image attached to either a room or an event space.
type Photo struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RoomID       *uuid.UUID `json:"room_id"`
	EventSpaceID *uuid.UUID `json:"event_space_id"`
	URL          string     `gorm:"size:255;not null" json:"url"`
	PublicID     string     `gorm:"size:255" json:"public_id"`
	Caption      string     `gorm:"size:255" json:"caption"`
	UploadedBy   string     `gorm:"size:50" json:"uploaded_by"`

	CreatedAt time.Time `json:"created_at"`
}
