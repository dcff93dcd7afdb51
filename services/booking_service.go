package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goldenpalm/resort_backend/models"
	"github.com/goldenpalm/resort_backend/utils"
)

// NotifyFunc delivers an in-app notification. Fire-and-forget: errors are the
// sink's problem, never the caller's.
type NotifyFunc func(userID uuid.UUID, ntype, title, message string, refID *uuid.UUID, refType string)

// BookingService owns the room booking lifecycle: creation behind the
// availability check, and the PENDING -> CONFIRMED -> CHECKED_IN ->
// CHECKED_OUT / CANCELLED transitions with their room-status and payment side
// effects. Every mutation runs inside one store transaction with the room row
// locked, so concurrent requests for the same room serialize.
type BookingService struct {
	store  Store
	now    func() time.Time
	notify NotifyFunc
}

func NewBookingService(store Store, now func() time.Time, notify NotifyFunc) *BookingService {
	if now == nil {
		now = time.Now
	}
	return &BookingService{store: store, now: now, notify: notify}
}

type CreateBookingInput struct {
	RoomID          uuid.UUID
	CheckInDate     time.Time
	CheckOutDate    time.Time
	GuestCount      int
	SpecialRequests string
	PaymentMethod   string
	// RequireApproval creates the booking PENDING with a PENDING payment for
	// the staff-approval flow. The self-service path confirms immediately and
	// completes the payment in the same transaction.
	RequireApproval bool
}

// Create books a room for the named user. The availability check, booking
// insert and payment insert commit as one unit.
func (s *BookingService) Create(username string, in CreateBookingInput) (*models.Booking, error) {
	if err := s.validateCreate(in); err != nil {
		return nil, err
	}

	method := in.PaymentMethod
	if method == "" {
		method = models.PaymentMethodCreditCard
	}

	var booking *models.Booking
	err := s.store.Transaction(func(st Store) error {
		user, err := st.Users().FindByUsername(username)
		if err != nil {
			return notFoundf("user %s", username)
		}

		room, err := st.Rooms().FindByIDForUpdate(in.RoomID)
		if err != nil {
			return notFoundf("room %s", in.RoomID)
		}

		existing, err := st.Bookings().ListByRoom(room.ID)
		if err != nil {
			return err
		}
		if HasRoomConflict(existing, dateOnly(in.CheckInDate), dateOnly(in.CheckOutDate)) {
			return fmt.Errorf("room %s is not available for the selected dates: %w", room.RoomNumber, ErrConflict)
		}

		total := RoomTotal(room.BasePrice, in.CheckInDate, in.CheckOutDate)

		status := models.BookingStatusConfirmed
		if in.RequireApproval {
			status = models.BookingStatusPending
		}

		booking = &models.Booking{
			BookingReference: utils.GenerateBookingReference(),
			UserID:           user.ID,
			RoomID:           room.ID,
			CheckInDate:      dateOnly(in.CheckInDate),
			CheckOutDate:     dateOnly(in.CheckOutDate),
			GuestCount:       in.GuestCount,
			TotalAmount:      total,
			Status:           status,
			SpecialRequests:  in.SpecialRequests,
			CreatedByID:      &user.ID,
		}
		if err := st.Bookings().Create(booking); err != nil {
			return err
		}

		payment := &models.Payment{
			BookingID:     &booking.ID,
			Amount:        total,
			PaymentMethod: method,
			PaymentStatus: models.PaymentStatusPending,
			TransactionID: utils.GenerateTransactionID(),
			ProcessedBy:   user.Username,
			Notes:         "Payment processed for booking " + booking.BookingReference,
		}
		if !in.RequireApproval {
			now := s.now()
			payment.PaymentStatus = models.PaymentStatusCompleted
			payment.PaymentDate = &now
		}
		return st.Payments().Create(payment)
	})
	if err != nil {
		return nil, err
	}

	s.sendNotify(booking.UserID, models.NotificationTypeBookingUpdate,
		"Booking "+booking.BookingReference+" received",
		fmt.Sprintf("Your room booking from %s to %s has been %s.",
			booking.CheckInDate.Format("2006-01-02"), booking.CheckOutDate.Format("2006-01-02"),
			statusWord(booking.Status)),
		&booking.ID, models.ReferenceTypeBooking)

	return booking, nil
}

// Approve moves a PENDING booking to CONFIRMED. The interval is re-checked
// against occupying bookings so that no sequence of approvals can ever leave
// two CONFIRMED or CHECKED_IN bookings overlapping on the same room.
func (s *BookingService) Approve(reference string) (*models.Booking, error) {
	var booking *models.Booking
	err := s.store.Transaction(func(st Store) error {
		var err error
		booking, err = st.Bookings().FindByReference(reference)
		if err != nil {
			return notFoundf("booking %s", reference)
		}
		if booking.Status != models.BookingStatusPending {
			return &IllegalStateError{Op: "approve", Current: booking.Status, Expected: models.BookingStatusPending}
		}

		room, err := st.Rooms().FindByIDForUpdate(booking.RoomID)
		if err != nil {
			return notFoundf("room %s", booking.RoomID)
		}

		existing, err := st.Bookings().ListByRoom(room.ID)
		if err != nil {
			return err
		}
		others := excludeBooking(existing, booking.ID)
		if hasRoomConflictWithStatuses(others, booking.CheckInDate, booking.CheckOutDate, roomOccupyingStatuses) {
			return fmt.Errorf("room %s already has a confirmed booking for these dates: %w", room.RoomNumber, ErrConflict)
		}

		booking.Status = models.BookingStatusConfirmed
		if err := st.Bookings().Save(booking); err != nil {
			return err
		}

		if !booking.CheckInDate.After(dateOnly(s.now())) {
			room.Status = models.RoomStatusOccupied
			if err := st.Rooms().Save(room); err != nil {
				return err
			}
		}
		return s.completePendingPayments(st, booking.ID)
	})
	if err != nil {
		return nil, err
	}

	s.sendNotify(booking.UserID, models.NotificationTypeBookingUpdate,
		"Booking "+booking.BookingReference+" confirmed",
		"Your room booking has been confirmed. We look forward to welcoming you.",
		&booking.ID, models.ReferenceTypeBooking)

	return booking, nil
}

// CheckIn moves a CONFIRMED booking to CHECKED_IN and marks the room
// OCCUPIED. The scheduled check-in date must have arrived and the room must
// still be AVAILABLE.
func (s *BookingService) CheckIn(reference string) (*models.Booking, error) {
	var booking *models.Booking
	err := s.store.Transaction(func(st Store) error {
		var err error
		booking, err = st.Bookings().FindByReference(reference)
		if err != nil {
			return notFoundf("booking %s", reference)
		}
		if booking.Status != models.BookingStatusConfirmed {
			return &IllegalStateError{Op: "check-in", Current: booking.Status, Expected: models.BookingStatusConfirmed}
		}

		today := dateOnly(s.now())
		if booking.CheckInDate.After(today) {
			return validationErrorf("cannot check in before the scheduled check-in date %s", booking.CheckInDate.Format("2006-01-02"))
		}

		room, err := st.Rooms().FindByIDForUpdate(booking.RoomID)
		if err != nil {
			return notFoundf("room %s", booking.RoomID)
		}
		if room.Status != models.RoomStatusAvailable {
			return validationErrorf("room %s is not available for check-in, status is %s", room.RoomNumber, room.Status)
		}
		if _, err := st.Users().FindByID(booking.UserID); err != nil {
			return notFoundf("guest %s", booking.UserID)
		}

		booking.Status = models.BookingStatusCheckedIn
		if err := st.Bookings().Save(booking); err != nil {
			return err
		}
		room.Status = models.RoomStatusOccupied
		if err := st.Rooms().Save(room); err != nil {
			return err
		}
		return s.completePendingPayments(st, booking.ID)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// CheckOut moves a CHECKED_IN booking to CHECKED_OUT and releases the room.
// Only a late guard exists: checking out after the scheduled check-out date
// has passed is rejected; leaving early is allowed.
func (s *BookingService) CheckOut(reference string) (*models.Booking, error) {
	var booking *models.Booking
	err := s.store.Transaction(func(st Store) error {
		var err error
		booking, err = st.Bookings().FindByReference(reference)
		if err != nil {
			return notFoundf("booking %s", reference)
		}
		if booking.Status != models.BookingStatusCheckedIn {
			return &IllegalStateError{Op: "check-out", Current: booking.Status, Expected: models.BookingStatusCheckedIn}
		}

		today := dateOnly(s.now())
		if booking.CheckOutDate.Before(today) {
			return validationErrorf("cannot check out after the scheduled check-out date %s", booking.CheckOutDate.Format("2006-01-02"))
		}

		room, err := st.Rooms().FindByIDForUpdate(booking.RoomID)
		if err != nil {
			return notFoundf("room %s", booking.RoomID)
		}

		booking.Status = models.BookingStatusCheckedOut
		if err := st.Bookings().Save(booking); err != nil {
			return err
		}
		room.Status = models.RoomStatusAvailable
		if err := st.Rooms().Save(room); err != nil {
			return err
		}
		return s.completePendingPayments(st, booking.ID)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Reject cancels a booking from the front desk, releasing the room and
// completing any pending payment. It is the staff override path: any
// non-cancelled booking can be rejected.
func (s *BookingService) Reject(reference string) (*models.Booking, error) {
	var booking *models.Booking
	err := s.store.Transaction(func(st Store) error {
		var err error
		booking, err = st.Bookings().FindByReference(reference)
		if err != nil {
			return notFoundf("booking %s", reference)
		}
		if booking.Status == models.BookingStatusCancelled {
			return &IllegalStateError{Op: "reject", Current: booking.Status, Expected: "any non-cancelled status"}
		}

		room, err := st.Rooms().FindByIDForUpdate(booking.RoomID)
		if err != nil {
			return notFoundf("room %s", booking.RoomID)
		}

		booking.Status = models.BookingStatusCancelled
		if err := st.Bookings().Save(booking); err != nil {
			return err
		}
		room.Status = models.RoomStatusAvailable
		if err := st.Rooms().Save(room); err != nil {
			return err
		}
		return s.completePendingPayments(st, booking.ID)
	})
	if err != nil {
		return nil, err
	}

	s.sendNotify(booking.UserID, models.NotificationTypeBookingUpdate,
		"Booking "+booking.BookingReference+" cancelled",
		"Your room booking has been cancelled by our staff. Please contact the front desk for details.",
		&booking.ID, models.ReferenceTypeBooking)

	return booking, nil
}

// Cancel is the guest-initiated cancellation: only the owner (or an admin)
// may cancel, only from PENDING or CONFIRMED, and only up to 24 hours before
// check-in.
func (s *BookingService) Cancel(reference, username string) error {
	return s.store.Transaction(func(st Store) error {
		user, err := st.Users().FindByUsername(username)
		if err != nil {
			return notFoundf("user %s", username)
		}
		booking, err := st.Bookings().FindByReference(reference)
		if err != nil {
			return notFoundf("booking %s", reference)
		}
		if booking.UserID != user.ID && user.Role != models.RoleAdmin {
			return validationErrorf("not authorized to cancel booking %s", reference)
		}
		if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusConfirmed {
			return &IllegalStateError{Op: "cancel", Current: booking.Status, Expected: models.BookingStatusPending + " or " + models.BookingStatusConfirmed}
		}
		if booking.CheckInDate.Before(dateOnly(s.now()).AddDate(0, 0, 1)) {
			return validationErrorf("cannot cancel booking within 24 hours of check-in")
		}

		booking.Status = models.BookingStatusCancelled
		return st.Bookings().Save(booking)
	})
}

type UpdateBookingInput struct {
	CheckInDate     *time.Time
	CheckOutDate    *time.Time
	GuestCount      *int
	SpecialRequests *string
}

// Update lets the front desk amend dates, guest count or requests. Changed
// dates are conflict-checked and the total amount re-derived.
func (s *BookingService) Update(reference string, in UpdateBookingInput) (*models.Booking, error) {
	var booking *models.Booking
	err := s.store.Transaction(func(st Store) error {
		var err error
		booking, err = st.Bookings().FindByReference(reference)
		if err != nil {
			return notFoundf("booking %s", reference)
		}
		if booking.IsTerminal() {
			return &IllegalStateError{Op: "update", Current: booking.Status, Expected: "a non-terminal status"}
		}

		checkIn, checkOut := booking.CheckInDate, booking.CheckOutDate
		if in.CheckInDate != nil {
			checkIn = dateOnly(*in.CheckInDate)
		}
		if in.CheckOutDate != nil {
			checkOut = dateOnly(*in.CheckOutDate)
		}
		if !checkOut.After(checkIn) {
			return validationErrorf("check-out date must be after check-in date")
		}
		if in.GuestCount != nil {
			if *in.GuestCount < 1 {
				return validationErrorf("at least one guest is required")
			}
			booking.GuestCount = *in.GuestCount
		}
		if in.SpecialRequests != nil {
			booking.SpecialRequests = *in.SpecialRequests
		}

		room, err := st.Rooms().FindByIDForUpdate(booking.RoomID)
		if err != nil {
			return notFoundf("room %s", booking.RoomID)
		}

		if !checkIn.Equal(booking.CheckInDate) || !checkOut.Equal(booking.CheckOutDate) {
			existing, err := st.Bookings().ListByRoom(room.ID)
			if err != nil {
				return err
			}
			if HasRoomConflict(excludeBooking(existing, booking.ID), checkIn, checkOut) {
				return fmt.Errorf("room %s is not available for the updated dates: %w", room.RoomNumber, ErrConflict)
			}
			booking.CheckInDate = checkIn
			booking.CheckOutDate = checkOut
			booking.TotalAmount = RoomTotal(room.BasePrice, checkIn, checkOut)
		}

		return st.Bookings().Save(booking)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Purge permanently deletes a booking and its dependent payments, payments
// first to satisfy foreign-key ordering. Administrative use only.
func (s *BookingService) Purge(reference string) error {
	return s.store.Transaction(func(st Store) error {
		booking, err := st.Bookings().FindByReference(reference)
		if err != nil {
			return notFoundf("booking %s", reference)
		}
		if err := st.Payments().DeleteForBooking(booking.ID); err != nil {
			return err
		}
		return st.Bookings().Delete(booking)
	})
}

func (s *BookingService) ByReference(reference string) (*models.Booking, error) {
	booking, err := s.store.Bookings().FindByReference(reference)
	if err != nil {
		return nil, notFoundf("booking %s", reference)
	}
	return booking, nil
}

func (s *BookingService) UserBookings(username string) ([]models.Booking, error) {
	user, err := s.store.Users().FindByUsername(username)
	if err != nil {
		return nil, notFoundf("user %s", username)
	}
	return s.store.Bookings().ListByUser(user.ID)
}

func (s *BookingService) ByStatus(status string) ([]models.Booking, error) {
	return s.store.Bookings().ListByStatus(status)
}

func (s *BookingService) All() ([]models.Booking, error) {
	return s.store.Bookings().ListAll()
}

// AvailableRooms lists active AVAILABLE rooms with enough capacity and no
// occupying booking overlapping the interval. PENDING bookings do not block
// a room from being listed.
func (s *BookingService) AvailableRooms(checkIn, checkOut time.Time, guestCount int) ([]models.Room, error) {
	if !dateOnly(checkOut).After(dateOnly(checkIn)) {
		return nil, validationErrorf("check-out date must be after check-in date")
	}
	rooms, err := s.store.Rooms().ListActive()
	if err != nil {
		return nil, err
	}
	byRoom := make(map[string][]models.Booking, len(rooms))
	for _, room := range rooms {
		bookings, err := s.store.Bookings().ListByRoom(room.ID)
		if err != nil {
			return nil, err
		}
		byRoom[room.ID.String()] = bookings
	}
	return FilterAvailableRooms(rooms, byRoom, dateOnly(checkIn), dateOnly(checkOut), guestCount), nil
}

// completePendingPayments is the named payment side effect of lifecycle
// transitions: every PENDING payment of the booking becomes COMPLETED with
// the payment date stamped. The amount is never touched.
func (s *BookingService) completePendingPayments(st Store, bookingID uuid.UUID) error {
	pending, err := st.Payments().ListPendingForBooking(bookingID)
	if err != nil {
		return err
	}
	now := s.now()
	for i := range pending {
		pending[i].PaymentStatus = models.PaymentStatusCompleted
		pending[i].PaymentDate = &now
		if err := st.Payments().Save(&pending[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *BookingService) validateCreate(in CreateBookingInput) error {
	if in.RoomID == uuid.Nil {
		return validationErrorf("room id is required")
	}
	if in.CheckInDate.IsZero() || in.CheckOutDate.IsZero() {
		return validationErrorf("check-in and check-out dates are required")
	}
	if !dateOnly(in.CheckOutDate).After(dateOnly(in.CheckInDate)) {
		return validationErrorf("check-out date must be after check-in date")
	}
	if in.GuestCount < 1 {
		return validationErrorf("at least one guest is required")
	}
	return nil
}

func (s *BookingService) sendNotify(userID uuid.UUID, ntype, title, message string, refID *uuid.UUID, refType string) {
	if s.notify != nil {
		s.notify(userID, ntype, title, message, refID, refType)
	}
}

func excludeBooking(bookings []models.Booking, id uuid.UUID) []models.Booking {
	out := bookings[:0:0]
	for _, b := range bookings {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}

func statusWord(status string) string {
	if status == models.BookingStatusConfirmed {
		return "confirmed"
	}
	return "received and is awaiting approval"
}

// TotalRevenue sums the amounts of COMPLETED payments, used by the manager
// dashboard.
func TotalRevenue(payments []models.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.PaymentStatus == models.PaymentStatusCompleted {
			total = total.Add(p.Amount)
		}
	}
	return total
}
