package services

import (
	"github.com/google/uuid"

	"github.com/goldenpalm/resort_backend/models"
)

// Store is the persistence contract consumed by the services. Transaction
// runs fn against a store bound to a single database transaction: every read
// and write inside fn commits or rolls back as one unit, which is what keeps
// the availability check and the booking/room writes from racing each other.
type Store interface {
	Users() UserRepository
	Rooms() RoomRepository
	Bookings() BookingRepository
	EventSpaces() EventSpaceRepository
	EventBookings() EventBookingRepository
	Payments() PaymentRepository
	RefundRequests() RefundRequestRepository
	Notifications() NotificationRepository

	Transaction(fn func(Store) error) error
}

type UserRepository interface {
	FindByID(id uuid.UUID) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	ListByRoles(roles ...string) ([]models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
}

type RoomRepository interface {
	FindByID(id uuid.UUID) (*models.Room, error)
	// FindByIDForUpdate locks the room row for the remainder of the enclosing
	// transaction. Concurrent booking attempts for the same room serialize on
	// this lock.
	FindByIDForUpdate(id uuid.UUID) (*models.Room, error)
	ListActive() ([]models.Room, error)
	ListByStatus(status string) ([]models.Room, error)
	Create(room *models.Room) error
	Save(room *models.Room) error
	Count() (int64, error)
}

type BookingRepository interface {
	FindByID(id uuid.UUID) (*models.Booking, error)
	FindByReference(ref string) (*models.Booking, error)
	ListByRoom(roomID uuid.UUID) ([]models.Booking, error)
	ListByUser(userID uuid.UUID) ([]models.Booking, error)
	ListByStatus(status string) ([]models.Booking, error)
	ListAll() ([]models.Booking, error)
	Create(b *models.Booking) error
	Save(b *models.Booking) error
	Delete(b *models.Booking) error
}

type EventSpaceRepository interface {
	FindByID(id uuid.UUID) (*models.EventSpace, error)
	FindByIDForUpdate(id uuid.UUID) (*models.EventSpace, error)
	ListActive() ([]models.EventSpace, error)
	Create(s *models.EventSpace) error
	Save(s *models.EventSpace) error
	Count() (int64, error)
}

type EventBookingRepository interface {
	FindByID(id uuid.UUID) (*models.EventBooking, error)
	FindByReference(ref string) (*models.EventBooking, error)
	ListBySpace(spaceID uuid.UUID) ([]models.EventBooking, error)
	ListByUser(userID uuid.UUID) ([]models.EventBooking, error)
	ListByStatus(status string) ([]models.EventBooking, error)
	ListAll() ([]models.EventBooking, error)
	Create(b *models.EventBooking) error
	Save(b *models.EventBooking) error
	Delete(b *models.EventBooking) error
}

type PaymentRepository interface {
	FindByID(id uuid.UUID) (*models.Payment, error)
	FindByBooking(bookingID uuid.UUID) (*models.Payment, error)
	FindByEventBooking(eventBookingID uuid.UUID) (*models.Payment, error)
	ListPendingForBooking(bookingID uuid.UUID) ([]models.Payment, error)
	ListPendingForEventBooking(eventBookingID uuid.UUID) ([]models.Payment, error)
	ListByStatus(status string) ([]models.Payment, error)
	ListAll() ([]models.Payment, error)
	Create(p *models.Payment) error
	Save(p *models.Payment) error
	DeleteForBooking(bookingID uuid.UUID) error
	DeleteForEventBooking(eventBookingID uuid.UUID) error
}

type RefundRequestRepository interface {
	FindByID(id uuid.UUID) (*models.RefundRequest, error)
	ListByUser(userID uuid.UUID) ([]models.RefundRequest, error)
	ListByStatus(status string) ([]models.RefundRequest, error)
	ListAll() ([]models.RefundRequest, error)
	Create(r *models.RefundRequest) error
	Save(r *models.RefundRequest) error
}

type NotificationRepository interface {
	FindByID(id uuid.UUID) (*models.Notification, error)
	ListByUser(userID uuid.UUID) ([]models.Notification, error)
	CountUnread(userID uuid.UUID) (int64, error)
	Create(n *models.Notification) error
	Save(n *models.Notification) error
}
