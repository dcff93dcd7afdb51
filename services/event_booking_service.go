package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goldenpalm/resort_backend/models"
	"github.com/goldenpalm/resort_backend/utils"
)

// EventBookingService owns the event booking lifecycle: PENDING -> CONFIRMED
// -> IN_PROGRESS -> COMPLETED, with CANCELLED reachable from PENDING and
// CONFIRMED. Event-space status is never flipped by transitions; overlap
// detection against occupying bookings is the real availability source.
type EventBookingService struct {
	store  Store
	now    func() time.Time
	notify NotifyFunc
}

func NewEventBookingService(store Store, now func() time.Time, notify NotifyFunc) *EventBookingService {
	if now == nil {
		now = time.Now
	}
	return &EventBookingService{store: store, now: now, notify: notify}
}

type CreateEventBookingInput struct {
	EventSpaceID        uuid.UUID
	EventType           string
	EventDate           time.Time
	StartTime           string
	EndTime             string
	ExpectedGuests      int
	SetupRequirements   string
	CateringRequired    bool
	AudioVisualRequired bool
	SpecialRequests     string
	ContactPerson       string
	ContactPhone        string
	ContactEmail        string
	PaymentMethod       string
}

// Create books an event space for a single date and time range. The booking
// starts PENDING with a PENDING payment; staff confirmation completes it.
func (s *EventBookingService) Create(username string, in CreateEventBookingInput) (*models.EventBooking, error) {
	if err := s.validateCreate(in); err != nil {
		return nil, err
	}

	method := in.PaymentMethod
	if method == "" {
		method = models.PaymentMethodCreditCard
	}

	var booking *models.EventBooking
	err := s.store.Transaction(func(st Store) error {
		user, err := st.Users().FindByUsername(username)
		if err != nil {
			return notFoundf("user %s", username)
		}

		space, err := st.EventSpaces().FindByIDForUpdate(in.EventSpaceID)
		if err != nil {
			return notFoundf("event space %s", in.EventSpaceID)
		}

		existing, err := st.EventBookings().ListBySpace(space.ID)
		if err != nil {
			return err
		}
		if HasEventConflict(existing, dateOnly(in.EventDate), in.StartTime, in.EndTime) {
			return fmt.Errorf("event space %s is not available for the selected date and time: %w", space.Name, ErrConflict)
		}

		total := EventTotal(space, in.StartTime, in.EndTime, in.CateringRequired, in.AudioVisualRequired)

		booking = &models.EventBooking{
			BookingReference:    utils.GenerateEventBookingReference(s.now()),
			UserID:              user.ID,
			EventSpaceID:        space.ID,
			EventType:           in.EventType,
			EventDate:           dateOnly(in.EventDate),
			StartTime:           in.StartTime,
			EndTime:             in.EndTime,
			ExpectedGuests:      in.ExpectedGuests,
			TotalAmount:         total,
			Status:              models.EventBookingStatusPending,
			SetupRequirements:   in.SetupRequirements,
			CateringRequired:    in.CateringRequired,
			AudioVisualRequired: in.AudioVisualRequired,
			SpecialRequests:     in.SpecialRequests,
			ContactPerson:       in.ContactPerson,
			ContactPhone:        in.ContactPhone,
			ContactEmail:        in.ContactEmail,
		}
		if err := st.EventBookings().Create(booking); err != nil {
			return err
		}

		payment := &models.Payment{
			EventBookingID: &booking.ID,
			Amount:         total,
			PaymentMethod:  method,
			PaymentStatus:  models.PaymentStatusPending,
			TransactionID:  utils.GenerateTransactionID(),
			ProcessedBy:    user.Username,
			Notes:          "Payment processed for event booking " + booking.BookingReference,
		}
		return st.Payments().Create(payment)
	})
	if err != nil {
		return nil, err
	}

	s.sendNotify(booking.UserID, models.NotificationTypeBookingUpdate,
		"Event booking "+booking.BookingReference+" received",
		fmt.Sprintf("Your event booking for %s (%s-%s) is awaiting confirmation.",
			booking.EventDate.Format("2006-01-02"), booking.StartTime, booking.EndTime),
		&booking.ID, models.ReferenceTypeEventBooking)

	return booking, nil
}

// Confirm moves a PENDING event booking to CONFIRMED after re-checking the
// time slot against occupying bookings, and completes pending payments.
func (s *EventBookingService) Confirm(reference string) (*models.EventBooking, error) {
	var booking *models.EventBooking
	err := s.store.Transaction(func(st Store) error {
		var err error
		booking, err = st.EventBookings().FindByReference(reference)
		if err != nil {
			return notFoundf("event booking %s", reference)
		}
		if booking.Status != models.EventBookingStatusPending {
			return &IllegalStateError{Op: "confirm", Current: booking.Status, Expected: models.EventBookingStatusPending}
		}

		space, err := st.EventSpaces().FindByIDForUpdate(booking.EventSpaceID)
		if err != nil {
			return notFoundf("event space %s", booking.EventSpaceID)
		}
		existing, err := st.EventBookings().ListBySpace(space.ID)
		if err != nil {
			return err
		}
		others := excludeEventBooking(existing, booking.ID)
		if hasEventConflictWithStatuses(others, booking.EventDate, booking.StartTime, booking.EndTime, eventOccupyingStatuses) {
			return fmt.Errorf("event space %s already has a confirmed booking for this slot: %w", space.Name, ErrConflict)
		}

		booking.Status = models.EventBookingStatusConfirmed
		if err := st.EventBookings().Save(booking); err != nil {
			return err
		}
		return s.completePendingPayments(st, booking.ID)
	})
	if err != nil {
		return nil, err
	}

	s.sendNotify(booking.UserID, models.NotificationTypeBookingUpdate,
		"Event booking "+booking.BookingReference+" confirmed",
		"Your event booking has been confirmed.",
		&booking.ID, models.ReferenceTypeEventBooking)

	return booking, nil
}

// Start moves a CONFIRMED event booking to IN_PROGRESS once its start time
// has arrived. Invoked by the front desk or the scheduled roll job.
func (s *EventBookingService) Start(reference string) (*models.EventBooking, error) {
	return s.transition(reference, "start",
		models.EventBookingStatusConfirmed, models.EventBookingStatusInProgress)
}

// Complete moves an IN_PROGRESS event booking to COMPLETED and completes any
// pending payments.
func (s *EventBookingService) Complete(reference string) (*models.EventBooking, error) {
	return s.transition(reference, "complete",
		models.EventBookingStatusInProgress, models.EventBookingStatusCompleted)
}

// Reject cancels an event booking from the front desk and completes pending
// payments. No space-status side effect.
func (s *EventBookingService) Reject(reference string) (*models.EventBooking, error) {
	var booking *models.EventBooking
	err := s.store.Transaction(func(st Store) error {
		var err error
		booking, err = st.EventBookings().FindByReference(reference)
		if err != nil {
			return notFoundf("event booking %s", reference)
		}
		if booking.Status == models.EventBookingStatusCancelled {
			return &IllegalStateError{Op: "reject", Current: booking.Status, Expected: "any non-cancelled status"}
		}
		booking.Status = models.EventBookingStatusCancelled
		if err := st.EventBookings().Save(booking); err != nil {
			return err
		}
		return s.completePendingPayments(st, booking.ID)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Cancel is guest-initiated and only allowed from PENDING or CONFIRMED.
func (s *EventBookingService) Cancel(id uuid.UUID, username string) (*models.EventBooking, error) {
	var booking *models.EventBooking
	err := s.store.Transaction(func(st Store) error {
		user, err := st.Users().FindByUsername(username)
		if err != nil {
			return notFoundf("user %s", username)
		}
		booking, err = st.EventBookings().FindByID(id)
		if err != nil {
			return notFoundf("event booking %s", id)
		}
		if booking.UserID != user.ID && user.Role != models.RoleAdmin {
			return validationErrorf("not authorized to cancel event booking %s", booking.BookingReference)
		}
		if booking.Status != models.EventBookingStatusPending && booking.Status != models.EventBookingStatusConfirmed {
			return &IllegalStateError{Op: "cancel", Current: booking.Status, Expected: models.EventBookingStatusPending + " or " + models.EventBookingStatusConfirmed}
		}
		booking.Status = models.EventBookingStatusCancelled
		return st.EventBookings().Save(booking)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *EventBookingService) ByID(id uuid.UUID) (*models.EventBooking, error) {
	booking, err := s.store.EventBookings().FindByID(id)
	if err != nil {
		return nil, notFoundf("event booking %s", id)
	}
	return booking, nil
}

func (s *EventBookingService) UserBookings(username string) ([]models.EventBooking, error) {
	user, err := s.store.Users().FindByUsername(username)
	if err != nil {
		return nil, notFoundf("user %s", username)
	}
	return s.store.EventBookings().ListByUser(user.ID)
}

// AvailableSpaces lists active AVAILABLE event spaces with enough capacity
// and no occupying booking overlapping the requested slot.
func (s *EventBookingService) AvailableSpaces(eventDate time.Time, startTime, endTime string, expectedGuests int) ([]models.EventSpace, error) {
	if err := validateEventTimes(startTime, endTime); err != nil {
		return nil, err
	}
	spaces, err := s.store.EventSpaces().ListActive()
	if err != nil {
		return nil, err
	}
	bySpace := make(map[string][]models.EventBooking, len(spaces))
	for _, space := range spaces {
		bookings, err := s.store.EventBookings().ListBySpace(space.ID)
		if err != nil {
			return nil, err
		}
		bySpace[space.ID.String()] = bookings
	}
	return FilterAvailableEventSpaces(spaces, bySpace, dateOnly(eventDate), startTime, endTime, expectedGuests), nil
}

// RollTransitions advances event bookings whose scheduled times have passed:
// CONFIRMED becomes IN_PROGRESS after the start time, IN_PROGRESS becomes
// COMPLETED after the end time. Returns how many bookings moved.
func (s *EventBookingService) RollTransitions() (int, error) {
	now := s.now()
	today := dateOnly(now)
	clock := now.Format("15:04")

	moved := 0
	confirmed, err := s.store.EventBookings().ListByStatus(models.EventBookingStatusConfirmed)
	if err != nil {
		return 0, err
	}
	for _, b := range confirmed {
		if b.EventDate.Before(today) || (sameDate(b.EventDate, today) && b.StartTime <= clock) {
			if _, err := s.Start(b.BookingReference); err != nil {
				return moved, err
			}
			moved++
		}
	}

	inProgress, err := s.store.EventBookings().ListByStatus(models.EventBookingStatusInProgress)
	if err != nil {
		return moved, err
	}
	for _, b := range inProgress {
		if b.EventDate.Before(today) || (sameDate(b.EventDate, today) && b.EndTime <= clock) {
			if _, err := s.Complete(b.BookingReference); err != nil {
				return moved, err
			}
			moved++
		}
	}
	return moved, nil
}

func (s *EventBookingService) transition(reference, op, from, to string) (*models.EventBooking, error) {
	var booking *models.EventBooking
	err := s.store.Transaction(func(st Store) error {
		var err error
		booking, err = st.EventBookings().FindByReference(reference)
		if err != nil {
			return notFoundf("event booking %s", reference)
		}
		if booking.Status != from {
			return &IllegalStateError{Op: op, Current: booking.Status, Expected: from}
		}
		booking.Status = to
		if err := st.EventBookings().Save(booking); err != nil {
			return err
		}
		return s.completePendingPayments(st, booking.ID)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *EventBookingService) completePendingPayments(st Store, eventBookingID uuid.UUID) error {
	pending, err := st.Payments().ListPendingForEventBooking(eventBookingID)
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

func (s *EventBookingService) validateCreate(in CreateEventBookingInput) error {
	if in.EventSpaceID == uuid.Nil {
		return validationErrorf("event space id is required")
	}
	if in.EventDate.Before(dateOnly(s.now())) {
		return validationErrorf("event date cannot be in the past")
	}
	if err := validateEventTimes(in.StartTime, in.EndTime); err != nil {
		return err
	}
	if in.ExpectedGuests < 1 || in.ExpectedGuests > 1000 {
		return validationErrorf("expected guests must be between 1 and 1000")
	}
	return nil
}

func validateEventTimes(startTime, endTime string) error {
	for _, v := range []string{startTime, endTime} {
		if _, err := time.Parse("15:04", v); err != nil {
			return validationErrorf("invalid time %q, use HH:MM format (e.g. 14:30)", v)
		}
	}
	if endTime <= startTime {
		return validationErrorf("end time must be after start time")
	}
	return nil
}

func (s *EventBookingService) sendNotify(userID uuid.UUID, ntype, title, message string, refID *uuid.UUID, refType string) {
	if s.notify != nil {
		s.notify(userID, ntype, title, message, refID, refType)
	}
}

func excludeEventBooking(bookings []models.EventBooking, id uuid.UUID) []models.EventBooking {
	out := bookings[:0:0]
	for _, b := range bookings {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}
