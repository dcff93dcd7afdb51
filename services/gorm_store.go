package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/goldenpalm/resort_backend/models"
)

// GormStore adapts a *gorm.DB to the Store contract. Transaction hands out a
// store bound to the transaction handle, so nested repository calls share one
// database transaction and FOR UPDATE row locks hold until commit.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Transaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) Users() UserRepository                   { return gormUserRepo{s.db} }
func (s *GormStore) Rooms() RoomRepository                   { return gormRoomRepo{s.db} }
func (s *GormStore) Bookings() BookingRepository             { return gormBookingRepo{s.db} }
func (s *GormStore) EventSpaces() EventSpaceRepository       { return gormEventSpaceRepo{s.db} }
func (s *GormStore) EventBookings() EventBookingRepository   { return gormEventBookingRepo{s.db} }
func (s *GormStore) Payments() PaymentRepository             { return gormPaymentRepo{s.db} }
func (s *GormStore) RefundRequests() RefundRequestRepository { return gormRefundRequestRepo{s.db} }
func (s *GormStore) Notifications() NotificationRepository   { return gormNotificationRepo{s.db} }

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type gormUserRepo struct{ db *gorm.DB }

func (r gormUserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r gormUserRepo) FindByUsername(username string) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, "username = ?", username).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r gormUserRepo) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r gormUserRepo) ListByRoles(roles ...string) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("role IN ?", roles).Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r gormUserRepo) Create(u *models.User) error { return r.db.Create(u).Error }
func (r gormUserRepo) Save(u *models.User) error   { return r.db.Save(u).Error }

type gormRoomRepo struct{ db *gorm.DB }

func (r gormRoomRepo) FindByID(id uuid.UUID) (*models.Room, error) {
	var room models.Room
	if err := r.db.First(&room, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &room, nil
}

func (r gormRoomRepo) FindByIDForUpdate(id uuid.UUID) (*models.Room, error) {
	var room models.Room
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &room, nil
}

func (r gormRoomRepo) ListActive() ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.Where("is_active = ?", true).Order("room_number").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r gormRoomRepo) ListByStatus(status string) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.Where("status = ?", status).Order("room_number").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r gormRoomRepo) Create(room *models.Room) error { return r.db.Create(room).Error }
func (r gormRoomRepo) Save(room *models.Room) error   { return r.db.Save(room).Error }

func (r gormRoomRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Room{}).Count(&n).Error
	return n, err
}

type gormBookingRepo struct{ db *gorm.DB }

func (r gormBookingRepo) FindByID(id uuid.UUID) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.Preload("Room").Preload("User").First(&b, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r gormBookingRepo) FindByReference(ref string) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.Preload("Room").Preload("User").First(&b, "booking_reference = ?", ref).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r gormBookingRepo) ListByRoom(roomID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.Where("room_id = ?", roomID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r gormBookingRepo) ListByUser(userID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.Preload("Room").Where("user_id = ?", userID).Order("check_in_date desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r gormBookingRepo) ListByStatus(status string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.Preload("Room").Preload("User").Where("status = ?", status).Order("check_in_date").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r gormBookingRepo) ListAll() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.Preload("Room").Preload("User").Order("created_at desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r gormBookingRepo) Create(b *models.Booking) error { return r.db.Create(b).Error }
func (r gormBookingRepo) Save(b *models.Booking) error   { return r.db.Save(b).Error }
func (r gormBookingRepo) Delete(b *models.Booking) error { return r.db.Delete(b).Error }

type gormEventSpaceRepo struct{ db *gorm.DB }

func (r gormEventSpaceRepo) FindByID(id uuid.UUID) (*models.EventSpace, error) {
	var s models.EventSpace
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r gormEventSpaceRepo) FindByIDForUpdate(id uuid.UUID) (*models.EventSpace, error) {
	var s models.EventSpace
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&s, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r gormEventSpaceRepo) ListActive() ([]models.EventSpace, error) {
	var spaces []models.EventSpace
	if err := r.db.Where("is_active = ?", true).Order("name").Find(&spaces).Error; err != nil {
		return nil, err
	}
	return spaces, nil
}

func (r gormEventSpaceRepo) Create(s *models.EventSpace) error { return r.db.Create(s).Error }
func (r gormEventSpaceRepo) Save(s *models.EventSpace) error   { return r.db.Save(s).Error }

func (r gormEventSpaceRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.EventSpace{}).Count(&n).Error
	return n, err
}

type gormEventBookingRepo struct{ db *gorm.DB }

func (r gormEventBookingRepo) FindByID(id uuid.UUID) (*models.EventBooking, error) {
	var b models.EventBooking
	if err := r.db.Preload("EventSpace").Preload("User").First(&b, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r gormEventBookingRepo) FindByReference(ref string) (*models.EventBooking, error) {
	var b models.EventBooking
	if err := r.db.Preload("EventSpace").Preload("User").First(&b, "booking_reference = ?", ref).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r gormEventBookingRepo) ListBySpace(spaceID uuid.UUID) ([]models.EventBooking, error) {
	var bookings []models.EventBooking
	if err := r.db.Where("event_space_id = ?", spaceID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r gormEventBookingRepo) ListByUser(userID uuid.UUID) ([]models.EventBooking, error) {
	var bookings []models.EventBooking
	if err := r.db.Preload("EventSpace").Where("user_id = ?", userID).Order("event_date desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r gormEventBookingRepo) ListByStatus(status string) ([]models.EventBooking, error) {
	var bookings []models.EventBooking
	if err := r.db.Preload("EventSpace").Preload("User").Where("status = ?", status).Order("event_date").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r gormEventBookingRepo) ListAll() ([]models.EventBooking, error) {
	var bookings []models.EventBooking
	if err := r.db.Preload("EventSpace").Preload("User").Order("created_at desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r gormEventBookingRepo) Create(b *models.EventBooking) error { return r.db.Create(b).Error }
func (r gormEventBookingRepo) Save(b *models.EventBooking) error   { return r.db.Save(b).Error }
func (r gormEventBookingRepo) Delete(b *models.EventBooking) error { return r.db.Delete(b).Error }

type gormPaymentRepo struct{ db *gorm.DB }

func (r gormPaymentRepo) FindByID(id uuid.UUID) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.Preload("Booking.User").Preload("EventBooking").First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r gormPaymentRepo) FindByBooking(bookingID uuid.UUID) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.First(&p, "booking_id = ?", bookingID).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r gormPaymentRepo) FindByEventBooking(eventBookingID uuid.UUID) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.First(&p, "event_booking_id = ?", eventBookingID).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r gormPaymentRepo) ListPendingForBooking(bookingID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Where("booking_id = ? AND payment_status = ?", bookingID, models.PaymentStatusPending).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r gormPaymentRepo) ListPendingForEventBooking(eventBookingID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Where("event_booking_id = ? AND payment_status = ?", eventBookingID, models.PaymentStatusPending).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r gormPaymentRepo) ListByStatus(status string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Preload("Booking").Preload("EventBooking").Where("payment_status = ?", status).Order("created_at desc").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r gormPaymentRepo) ListAll() ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Preload("Booking").Preload("EventBooking").Order("created_at desc").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r gormPaymentRepo) Create(p *models.Payment) error { return r.db.Create(p).Error }
func (r gormPaymentRepo) Save(p *models.Payment) error   { return r.db.Save(p).Error }

func (r gormPaymentRepo) DeleteForBooking(bookingID uuid.UUID) error {
	return r.db.Where("booking_id = ?", bookingID).Delete(&models.Payment{}).Error
}

func (r gormPaymentRepo) DeleteForEventBooking(eventBookingID uuid.UUID) error {
	return r.db.Where("event_booking_id = ?", eventBookingID).Delete(&models.Payment{}).Error
}

type gormRefundRequestRepo struct{ db *gorm.DB }

func (r gormRefundRequestRepo) FindByID(id uuid.UUID) (*models.RefundRequest, error) {
	var rr models.RefundRequest
	if err := r.db.Preload("User").Preload("Booking.Room").Preload("EventBooking.EventSpace").First(&rr, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &rr, nil
}

func (r gormRefundRequestRepo) ListByUser(userID uuid.UUID) ([]models.RefundRequest, error) {
	var requests []models.RefundRequest
	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r gormRefundRequestRepo) ListByStatus(status string) ([]models.RefundRequest, error) {
	var requests []models.RefundRequest
	if err := r.db.Preload("User").Where("status = ?", status).Order("created_at desc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r gormRefundRequestRepo) ListAll() ([]models.RefundRequest, error) {
	var requests []models.RefundRequest
	if err := r.db.Preload("User").Order("created_at desc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r gormRefundRequestRepo) Create(rr *models.RefundRequest) error { return r.db.Create(rr).Error }
func (r gormRefundRequestRepo) Save(rr *models.RefundRequest) error   { return r.db.Save(rr).Error }

type gormNotificationRepo struct{ db *gorm.DB }

func (r gormNotificationRepo) FindByID(id uuid.UUID) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.First(&n, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &n, nil
}

func (r gormNotificationRepo) ListByUser(userID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r gormNotificationRepo) CountUnread(userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userID, false).Count(&n).Error
	return n, err
}

func (r gormNotificationRepo) Create(n *models.Notification) error { return r.db.Create(n).Error }
func (r gormNotificationRepo) Save(n *models.Notification) error   { return r.db.Save(n).Error }
