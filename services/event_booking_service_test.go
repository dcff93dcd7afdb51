package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldenpalm/resort_backend/models"
)

type eventFixture struct {
	store *memStore
	svc   *EventBookingService
	guest models.User
	space models.EventSpace
	now   time.Time
}

func newEventFixture(t *testing.T) *eventFixture {
	t.Helper()
	f := &eventFixture{
		store: newMemStore(),
		now:   time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC),
	}
	f.guest = models.User{Username: "john_doe", Email: "john@example.com", Role: models.RoleGuest, IsActive: true}
	require.NoError(t, f.store.Users().Create(&f.guest))

	f.space = models.EventSpace{
		Name: "Grand Ballroom", Capacity: 500,
		BasePrice:            decimal.NewFromInt(150000),
		CateringAvailable:    true,
		AudioVisualEquipment: true,
		Status:               models.EventSpaceStatusAvailable,
		IsActive:             true,
	}
	require.NoError(t, f.store.EventSpaces().Create(&f.space))

	f.svc = NewEventBookingService(f.store, fixedClock(f.now), nil)
	return f
}

func (f *eventFixture) createInput() CreateEventBookingInput {
	return CreateEventBookingInput{
		EventSpaceID:   f.space.ID,
		EventType:      "WEDDING",
		EventDate:      date(2024, 7, 1),
		StartTime:      "10:00",
		EndTime:        "16:00",
		ExpectedGuests: 300,
		ContactPerson:  "John Doe",
		ContactPhone:   "0771234567",
		ContactEmail:   "john@example.com",
	}
}

func TestEventBookingCreate(t *testing.T) {
	f := newEventFixture(t)

	in := f.createInput()
	in.CateringRequired = true
	booking, err := f.svc.Create(f.guest.Username, in)
	require.NoError(t, err)

	assert.Equal(t, models.EventBookingStatusPending, booking.Status)
	// 6 hours at 150000 plus the catering fee.
	assert.True(t, booking.TotalAmount.Equal(decimal.NewFromInt(950000)), "got %s", booking.TotalAmount)
	assert.NotEmpty(t, booking.BookingReference)

	payment, err := f.store.Payments().FindByEventBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, payment.PaymentStatus)
	assert.True(t, payment.Amount.Equal(booking.TotalAmount))
}

func TestEventBookingCreateValidation(t *testing.T) {
	f := newEventFixture(t)
	var verr *ValidationError

	in := f.createInput()
	in.EventDate = date(2024, 5, 1)
	_, err := f.svc.Create(f.guest.Username, in)
	require.ErrorAs(t, err, &verr, "past event date")

	in = f.createInput()
	in.StartTime, in.EndTime = "16:00", "10:00"
	_, err = f.svc.Create(f.guest.Username, in)
	require.ErrorAs(t, err, &verr, "end before start")

	in = f.createInput()
	in.StartTime = "10am"
	_, err = f.svc.Create(f.guest.Username, in)
	require.ErrorAs(t, err, &verr, "malformed time")

	in = f.createInput()
	in.ExpectedGuests = 0
	_, err = f.svc.Create(f.guest.Username, in)
	require.ErrorAs(t, err, &verr, "guest count")
}

func TestEventBookingCreateConflict(t *testing.T) {
	f := newEventFixture(t)

	_, err := f.svc.Create(f.guest.Username, f.createInput())
	require.NoError(t, err)

	in := f.createInput()
	in.StartTime, in.EndTime = "14:00", "20:00"
	_, err = f.svc.Create(f.guest.Username, in)
	require.ErrorIs(t, err, ErrConflict)

	// An adjacent slot on the same date is fine.
	in.StartTime, in.EndTime = "16:00", "20:00"
	_, err = f.svc.Create(f.guest.Username, in)
	require.NoError(t, err)

	bookings, err := f.store.EventBookings().ListAll()
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestEventBookingConfirm(t *testing.T) {
	f := newEventFixture(t)

	booking, err := f.svc.Create(f.guest.Username, f.createInput())
	require.NoError(t, err)

	confirmed, err := f.svc.Confirm(booking.BookingReference)
	require.NoError(t, err)
	assert.Equal(t, models.EventBookingStatusConfirmed, confirmed.Status)

	payment, err := f.store.Payments().FindByEventBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, payment.PaymentStatus)
	assert.NotNil(t, payment.PaymentDate)

	_, err = f.svc.Confirm(booking.BookingReference)
	var ierr *IllegalStateError
	require.ErrorAs(t, err, &ierr)
}

func TestEventBookingConfirmRechecksOverlap(t *testing.T) {
	f := newEventFixture(t)

	first, err := f.svc.Create(f.guest.Username, f.createInput())
	require.NoError(t, err)

	second := &models.EventBooking{
		BookingReference: "EVTEST001",
		UserID:           f.guest.ID,
		EventSpaceID:     f.space.ID,
		EventDate:        date(2024, 7, 1),
		StartTime:        "12:00",
		EndTime:          "18:00",
		ExpectedGuests:   100,
		TotalAmount:      decimal.NewFromInt(900000),
		Status:           models.EventBookingStatusPending,
	}
	require.NoError(t, f.store.EventBookings().Create(second))

	_, err = f.svc.Confirm(first.BookingReference)
	require.NoError(t, err)

	_, err = f.svc.Confirm(second.BookingReference)
	require.ErrorIs(t, err, ErrConflict)

	got, err := f.store.EventBookings().FindByID(second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EventBookingStatusPending, got.Status)
}

func TestEventBookingLifecycle(t *testing.T) {
	f := newEventFixture(t)

	booking, err := f.svc.Create(f.guest.Username, f.createInput())
	require.NoError(t, err)

	var ierr *IllegalStateError
	_, err = f.svc.Start(booking.BookingReference)
	require.ErrorAs(t, err, &ierr, "cannot start a pending booking")

	_, err = f.svc.Confirm(booking.BookingReference)
	require.NoError(t, err)
	started, err := f.svc.Start(booking.BookingReference)
	require.NoError(t, err)
	assert.Equal(t, models.EventBookingStatusInProgress, started.Status)

	_, err = f.svc.Cancel(booking.ID, f.guest.Username)
	require.ErrorAs(t, err, &ierr, "cannot cancel once in progress")

	done, err := f.svc.Complete(booking.BookingReference)
	require.NoError(t, err)
	assert.Equal(t, models.EventBookingStatusCompleted, done.Status)

	_, err = f.svc.Complete(booking.BookingReference)
	require.ErrorAs(t, err, &ierr)
}

func TestEventBookingGuestCancel(t *testing.T) {
	f := newEventFixture(t)

	booking, err := f.svc.Create(f.guest.Username, f.createInput())
	require.NoError(t, err)

	other := models.User{Username: "jane_doe", Email: "jane@example.com", Role: models.RoleGuest, IsActive: true}
	require.NoError(t, f.store.Users().Create(&other))

	_, err = f.svc.Cancel(booking.ID, other.Username)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	cancelled, err := f.svc.Cancel(booking.ID, f.guest.Username)
	require.NoError(t, err)
	assert.Equal(t, models.EventBookingStatusCancelled, cancelled.Status)
}

func TestEventBookingAvailableSpaces(t *testing.T) {
	f := newEventFixture(t)

	garden := models.EventSpace{
		Name: "Royal Garden", Capacity: 300,
		BasePrice: decimal.NewFromInt(100000),
		Status:    models.EventSpaceStatusAvailable,
		IsActive:  true,
	}
	require.NoError(t, f.store.EventSpaces().Create(&garden))

	booking, err := f.svc.Create(f.guest.Username, f.createInput())
	require.NoError(t, err)
	_, err = f.svc.Confirm(booking.BookingReference)
	require.NoError(t, err)

	spaces, err := f.svc.AvailableSpaces(date(2024, 7, 1), "12:00", "14:00", 100)
	require.NoError(t, err)
	require.Len(t, spaces, 1)
	assert.Equal(t, "Royal Garden", spaces[0].Name)

	spaces, err = f.svc.AvailableSpaces(date(2024, 7, 2), "12:00", "14:00", 100)
	require.NoError(t, err)
	assert.Len(t, spaces, 2)
}

func TestEventBookingRollTransitions(t *testing.T) {
	f := newEventFixture(t)

	in := f.createInput()
	in.EventDate = dateOnly(f.now)
	in.StartTime, in.EndTime = "09:00", "17:00"
	running, err := f.svc.Create(f.guest.Username, in)
	require.NoError(t, err)
	_, err = f.svc.Confirm(running.BookingReference)
	require.NoError(t, err)

	in = f.createInput()
	in.EventDate = date(2024, 8, 1)
	future, err := f.svc.Create(f.guest.Username, in)
	require.NoError(t, err)
	_, err = f.svc.Confirm(future.BookingReference)
	require.NoError(t, err)

	// Clock is 10:00: the 09:00 event has started, the 17:00 end and the
	// August event are still ahead.
	moved, err := f.svc.RollTransitions()
	require.NoError(t, err)
	assert.Equal(t, 1, moved)

	got, err := f.store.EventBookings().FindByID(running.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EventBookingStatusInProgress, got.Status)
	got, err = f.store.EventBookings().FindByID(future.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EventBookingStatusConfirmed, got.Status)

	f.svc = NewEventBookingService(f.store, fixedClock(f.now.Add(8*time.Hour)), nil)
	moved, err = f.svc.RollTransitions()
	require.NoError(t, err)
	assert.Equal(t, 1, moved)

	got, err = f.store.EventBookings().FindByID(running.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EventBookingStatusCompleted, got.Status)
}
