package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/goldenpalm/resort_backend/models"
)

// memStore is a slice-backed Store fake for service tests. Transaction has no
// rollback: the services validate before mutating, which the tests rely on to
// verify "no partial effects" behavior.
type memStore struct {
	users          []models.User
	rooms          []models.Room
	bookings       []models.Booking
	eventSpaces    []models.EventSpace
	eventBookings  []models.EventBooking
	payments       []models.Payment
	refundRequests []models.RefundRequest
	notifications  []models.Notification
}

func newMemStore() *memStore { return &memStore{} }

func (s *memStore) Transaction(fn func(Store) error) error { return fn(s) }

func (s *memStore) Users() UserRepository                   { return memUserRepo{s} }
func (s *memStore) Rooms() RoomRepository                   { return memRoomRepo{s} }
func (s *memStore) Bookings() BookingRepository             { return memBookingRepo{s} }
func (s *memStore) EventSpaces() EventSpaceRepository       { return memEventSpaceRepo{s} }
func (s *memStore) EventBookings() EventBookingRepository   { return memEventBookingRepo{s} }
func (s *memStore) Payments() PaymentRepository             { return memPaymentRepo{s} }
func (s *memStore) RefundRequests() RefundRequestRepository { return memRefundRequestRepo{s} }
func (s *memStore) Notifications() NotificationRepository   { return memNotificationRepo{s} }

func ensureID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}

type memUserRepo struct{ s *memStore }

func (r memUserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	for i := range r.s.users {
		if r.s.users[i].ID == id {
			u := r.s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r memUserRepo) FindByUsername(username string) (*models.User, error) {
	for i := range r.s.users {
		if r.s.users[i].Username == username {
			u := r.s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r memUserRepo) FindByEmail(email string) (*models.User, error) {
	for i := range r.s.users {
		if r.s.users[i].Email == email {
			u := r.s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r memUserRepo) ListByRoles(roles ...string) ([]models.User, error) {
	var out []models.User
	for _, u := range r.s.users {
		for _, role := range roles {
			if u.Role == role {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}

func (r memUserRepo) Create(u *models.User) error {
	u.ID = ensureID(u.ID)
	u.CreatedAt = time.Now()
	r.s.users = append(r.s.users, *u)
	return nil
}

func (r memUserRepo) Save(u *models.User) error {
	for i := range r.s.users {
		if r.s.users[i].ID == u.ID {
			r.s.users[i] = *u
			return nil
		}
	}
	return ErrNotFound
}

type memRoomRepo struct{ s *memStore }

func (r memRoomRepo) FindByID(id uuid.UUID) (*models.Room, error) {
	for i := range r.s.rooms {
		if r.s.rooms[i].ID == id {
			room := r.s.rooms[i]
			return &room, nil
		}
	}
	return nil, ErrNotFound
}

func (r memRoomRepo) FindByIDForUpdate(id uuid.UUID) (*models.Room, error) {
	return r.FindByID(id)
}

func (r memRoomRepo) ListActive() ([]models.Room, error) {
	var out []models.Room
	for _, room := range r.s.rooms {
		if room.IsActive {
			out = append(out, room)
		}
	}
	return out, nil
}

func (r memRoomRepo) ListByStatus(status string) ([]models.Room, error) {
	var out []models.Room
	for _, room := range r.s.rooms {
		if room.Status == status {
			out = append(out, room)
		}
	}
	return out, nil
}

func (r memRoomRepo) Create(room *models.Room) error {
	room.ID = ensureID(room.ID)
	r.s.rooms = append(r.s.rooms, *room)
	return nil
}

func (r memRoomRepo) Save(room *models.Room) error {
	for i := range r.s.rooms {
		if r.s.rooms[i].ID == room.ID {
			r.s.rooms[i] = *room
			return nil
		}
	}
	return ErrNotFound
}

func (r memRoomRepo) Count() (int64, error) { return int64(len(r.s.rooms)), nil }

type memBookingRepo struct{ s *memStore }

func (r memBookingRepo) FindByID(id uuid.UUID) (*models.Booking, error) {
	for i := range r.s.bookings {
		if r.s.bookings[i].ID == id {
			b := r.s.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (r memBookingRepo) FindByReference(ref string) (*models.Booking, error) {
	for i := range r.s.bookings {
		if r.s.bookings[i].BookingReference == ref {
			b := r.s.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (r memBookingRepo) ListByRoom(roomID uuid.UUID) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.s.bookings {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r memBookingRepo) ListByUser(userID uuid.UUID) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r memBookingRepo) ListByStatus(status string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.s.bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r memBookingRepo) ListAll() ([]models.Booking, error) {
	return append([]models.Booking(nil), r.s.bookings...), nil
}

func (r memBookingRepo) Create(b *models.Booking) error {
	b.ID = ensureID(b.ID)
	b.CreatedAt = time.Now()
	r.s.bookings = append(r.s.bookings, *b)
	return nil
}

func (r memBookingRepo) Save(b *models.Booking) error {
	for i := range r.s.bookings {
		if r.s.bookings[i].ID == b.ID {
			b.UpdatedAt = time.Now()
			r.s.bookings[i] = *b
			return nil
		}
	}
	return ErrNotFound
}

func (r memBookingRepo) Delete(b *models.Booking) error {
	for i := range r.s.bookings {
		if r.s.bookings[i].ID == b.ID {
			r.s.bookings = append(r.s.bookings[:i], r.s.bookings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type memEventSpaceRepo struct{ s *memStore }

func (r memEventSpaceRepo) FindByID(id uuid.UUID) (*models.EventSpace, error) {
	for i := range r.s.eventSpaces {
		if r.s.eventSpaces[i].ID == id {
			sp := r.s.eventSpaces[i]
			return &sp, nil
		}
	}
	return nil, ErrNotFound
}

func (r memEventSpaceRepo) FindByIDForUpdate(id uuid.UUID) (*models.EventSpace, error) {
	return r.FindByID(id)
}

func (r memEventSpaceRepo) ListActive() ([]models.EventSpace, error) {
	var out []models.EventSpace
	for _, sp := range r.s.eventSpaces {
		if sp.IsActive {
			out = append(out, sp)
		}
	}
	return out, nil
}

func (r memEventSpaceRepo) Create(sp *models.EventSpace) error {
	sp.ID = ensureID(sp.ID)
	r.s.eventSpaces = append(r.s.eventSpaces, *sp)
	return nil
}

func (r memEventSpaceRepo) Save(sp *models.EventSpace) error {
	for i := range r.s.eventSpaces {
		if r.s.eventSpaces[i].ID == sp.ID {
			r.s.eventSpaces[i] = *sp
			return nil
		}
	}
	return ErrNotFound
}

func (r memEventSpaceRepo) Count() (int64, error) { return int64(len(r.s.eventSpaces)), nil }

type memEventBookingRepo struct{ s *memStore }

func (r memEventBookingRepo) FindByID(id uuid.UUID) (*models.EventBooking, error) {
	for i := range r.s.eventBookings {
		if r.s.eventBookings[i].ID == id {
			b := r.s.eventBookings[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (r memEventBookingRepo) FindByReference(ref string) (*models.EventBooking, error) {
	for i := range r.s.eventBookings {
		if r.s.eventBookings[i].BookingReference == ref {
			b := r.s.eventBookings[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (r memEventBookingRepo) ListBySpace(spaceID uuid.UUID) ([]models.EventBooking, error) {
	var out []models.EventBooking
	for _, b := range r.s.eventBookings {
		if b.EventSpaceID == spaceID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r memEventBookingRepo) ListByUser(userID uuid.UUID) ([]models.EventBooking, error) {
	var out []models.EventBooking
	for _, b := range r.s.eventBookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r memEventBookingRepo) ListByStatus(status string) ([]models.EventBooking, error) {
	var out []models.EventBooking
	for _, b := range r.s.eventBookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r memEventBookingRepo) ListAll() ([]models.EventBooking, error) {
	return append([]models.EventBooking(nil), r.s.eventBookings...), nil
}

func (r memEventBookingRepo) Create(b *models.EventBooking) error {
	b.ID = ensureID(b.ID)
	b.CreatedAt = time.Now()
	r.s.eventBookings = append(r.s.eventBookings, *b)
	return nil
}

func (r memEventBookingRepo) Save(b *models.EventBooking) error {
	for i := range r.s.eventBookings {
		if r.s.eventBookings[i].ID == b.ID {
			r.s.eventBookings[i] = *b
			return nil
		}
	}
	return ErrNotFound
}

func (r memEventBookingRepo) Delete(b *models.EventBooking) error {
	for i := range r.s.eventBookings {
		if r.s.eventBookings[i].ID == b.ID {
			r.s.eventBookings = append(r.s.eventBookings[:i], r.s.eventBookings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type memPaymentRepo struct{ s *memStore }

func (r memPaymentRepo) FindByID(id uuid.UUID) (*models.Payment, error) {
	for i := range r.s.payments {
		if r.s.payments[i].ID == id {
			p := r.s.payments[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r memPaymentRepo) FindByBooking(bookingID uuid.UUID) (*models.Payment, error) {
	for i := range r.s.payments {
		if r.s.payments[i].BookingID != nil && *r.s.payments[i].BookingID == bookingID {
			p := r.s.payments[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r memPaymentRepo) FindByEventBooking(eventBookingID uuid.UUID) (*models.Payment, error) {
	for i := range r.s.payments {
		if r.s.payments[i].EventBookingID != nil && *r.s.payments[i].EventBookingID == eventBookingID {
			p := r.s.payments[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r memPaymentRepo) ListPendingForBooking(bookingID uuid.UUID) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.s.payments {
		if p.BookingID != nil && *p.BookingID == bookingID && p.PaymentStatus == models.PaymentStatusPending {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memPaymentRepo) ListPendingForEventBooking(eventBookingID uuid.UUID) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.s.payments {
		if p.EventBookingID != nil && *p.EventBookingID == eventBookingID && p.PaymentStatus == models.PaymentStatusPending {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memPaymentRepo) ListByStatus(status string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.s.payments {
		if p.PaymentStatus == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memPaymentRepo) ListAll() ([]models.Payment, error) {
	return append([]models.Payment(nil), r.s.payments...), nil
}

func (r memPaymentRepo) Create(p *models.Payment) error {
	p.ID = ensureID(p.ID)
	p.CreatedAt = time.Now()
	r.s.payments = append(r.s.payments, *p)
	return nil
}

func (r memPaymentRepo) Save(p *models.Payment) error {
	for i := range r.s.payments {
		if r.s.payments[i].ID == p.ID {
			r.s.payments[i] = *p
			return nil
		}
	}
	return ErrNotFound
}

func (r memPaymentRepo) DeleteForBooking(bookingID uuid.UUID) error {
	kept := r.s.payments[:0]
	for _, p := range r.s.payments {
		if p.BookingID == nil || *p.BookingID != bookingID {
			kept = append(kept, p)
		}
	}
	r.s.payments = kept
	return nil
}

func (r memPaymentRepo) DeleteForEventBooking(eventBookingID uuid.UUID) error {
	kept := r.s.payments[:0]
	for _, p := range r.s.payments {
		if p.EventBookingID == nil || *p.EventBookingID != eventBookingID {
			kept = append(kept, p)
		}
	}
	r.s.payments = kept
	return nil
}

type memRefundRequestRepo struct{ s *memStore }

func (r memRefundRequestRepo) FindByID(id uuid.UUID) (*models.RefundRequest, error) {
	for i := range r.s.refundRequests {
		if r.s.refundRequests[i].ID == id {
			rr := r.s.refundRequests[i]
			return &rr, nil
		}
	}
	return nil, ErrNotFound
}

func (r memRefundRequestRepo) ListByUser(userID uuid.UUID) ([]models.RefundRequest, error) {
	var out []models.RefundRequest
	for _, rr := range r.s.refundRequests {
		if rr.UserID == userID {
			out = append(out, rr)
		}
	}
	return out, nil
}

func (r memRefundRequestRepo) ListByStatus(status string) ([]models.RefundRequest, error) {
	var out []models.RefundRequest
	for _, rr := range r.s.refundRequests {
		if rr.Status == status {
			out = append(out, rr)
		}
	}
	return out, nil
}

func (r memRefundRequestRepo) ListAll() ([]models.RefundRequest, error) {
	return append([]models.RefundRequest(nil), r.s.refundRequests...), nil
}

func (r memRefundRequestRepo) Create(rr *models.RefundRequest) error {
	rr.ID = ensureID(rr.ID)
	rr.CreatedAt = time.Now()
	r.s.refundRequests = append(r.s.refundRequests, *rr)
	return nil
}

func (r memRefundRequestRepo) Save(rr *models.RefundRequest) error {
	for i := range r.s.refundRequests {
		if r.s.refundRequests[i].ID == rr.ID {
			r.s.refundRequests[i] = *rr
			return nil
		}
	}
	return ErrNotFound
}

type memNotificationRepo struct{ s *memStore }

func (r memNotificationRepo) FindByID(id uuid.UUID) (*models.Notification, error) {
	for i := range r.s.notifications {
		if r.s.notifications[i].ID == id {
			n := r.s.notifications[i]
			return &n, nil
		}
	}
	return nil, ErrNotFound
}

func (r memNotificationRepo) ListByUser(userID uuid.UUID) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r memNotificationRepo) CountUnread(userID uuid.UUID) (int64, error) {
	var count int64
	for _, n := range r.s.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r memNotificationRepo) Create(n *models.Notification) error {
	n.ID = ensureID(n.ID)
	n.CreatedAt = time.Now()
	r.s.notifications = append(r.s.notifications, *n)
	return nil
}

func (r memNotificationRepo) Save(n *models.Notification) error {
	for i := range r.s.notifications {
		if r.s.notifications[i].ID == n.ID {
			r.s.notifications[i] = *n
			return nil
		}
	}
	return ErrNotFound
}
