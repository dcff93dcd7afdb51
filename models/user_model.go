package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleGuest          = "GUEST"
	RoleAdmin          = "ADMIN"
	RoleManager        = "MANAGER"
	RoleFrontDesk      = "FRONT_DESK"
	RolePaymentOfficer = "PAYMENT_OFFICER"
	RoleBackOffice     = "BACK_OFFICE"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Username  string    `gorm:"size:50;not null;unique" json:"username"`
	Email     string    `gorm:"size:255;not null;unique" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string    `gorm:"size:100;not null" json:"first_name"`
	LastName  string    `gorm:"size:100;not null" json:"last_name"`
	Phone     *string   `gorm:"size:20" json:"phone"`
	Role      string    `gorm:"size:20;not null;default:'GUEST'" json:"role"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsStaff reports whether the user holds any back-of-house role.
func (u User) IsStaff() bool {
	switch u.Role {
	case RoleAdmin, RoleManager, RoleFrontDesk, RolePaymentOfficer, RoleBackOffice:
		return true
	}
	return false
}
