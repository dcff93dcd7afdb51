package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldenpalm/resort_backend/models"
)

type refundFixture struct {
	*bookingFixture
	svc     *RefundService
	booking *models.Booking
}

func newRefundFixture(t *testing.T) *refundFixture {
	t.Helper()
	bf := newBookingFixture(t)
	f := &refundFixture{bookingFixture: bf}

	booking, err := bf.svc.Create(bf.guest.Username, bf.createInput())
	require.NoError(t, err)
	f.booking = booking

	f.svc = NewRefundService(bf.store, fixedClock(bf.now), nil)
	return f
}

func (f *refundFixture) createInput(amount int64) CreateRefundRequestInput {
	return CreateRefundRequestInput{
		BookingReference:  f.booking.BookingReference,
		BookingType:       "ROOM",
		RefundAmount:      decimal.NewFromInt(amount),
		BankAccountNumber: "1234567890",
		BankName:          "Commercial Bank",
		BankBranch:        "Colombo",
		AccountHolderName: "John Doe",
		Reason:            "Change of plans",
	}
}

func TestRefundRequestCreate(t *testing.T) {
	f := newRefundFixture(t)

	request, err := f.svc.Create(f.guest.Username, f.createInput(30000))
	require.NoError(t, err)
	assert.Equal(t, models.RefundStatusPending, request.Status)
	require.NotNil(t, request.BookingID)
	assert.Equal(t, f.booking.ID, *request.BookingID)

	_, err = f.svc.Create(f.guest.Username, f.createInput(0))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	in := f.createInput(30000)
	in.BookingType = "SPA"
	_, err = f.svc.Create(f.guest.Username, in)
	require.ErrorAs(t, err, &verr)

	in = f.createInput(30000)
	in.BookingReference = "BKMISSING"
	_, err = f.svc.Create(f.guest.Username, in)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRefundApproveCascades(t *testing.T) {
	f := newRefundFixture(t)

	notified := false
	f.svc = NewRefundService(f.store, fixedClock(f.now), func(userID uuid.UUID, ntype, title, message string, refID *uuid.UUID, refType string) {
		notified = true
		assert.Equal(t, f.guest.ID, userID)
		assert.Equal(t, models.NotificationTypeRefundApproved, ntype)
	})

	request, err := f.svc.Create(f.guest.Username, f.createInput(30000))
	require.NoError(t, err)

	approved, err := f.svc.Approve(request.ID, "payment_officer")
	require.NoError(t, err)
	assert.Equal(t, models.RefundStatusApproved, approved.Status)
	assert.Equal(t, "payment_officer", approved.ProcessedBy)
	assert.NotNil(t, approved.ProcessedAt)
	assert.True(t, notified)

	booking, err := f.store.Bookings().FindByID(f.booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, booking.Status)

	payment, err := f.store.Payments().FindByBooking(f.booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, payment.PaymentStatus)
	require.NotNil(t, payment.RefundAmount)
	assert.True(t, payment.RefundAmount.Equal(decimal.NewFromInt(30000)))
	assert.NotNil(t, payment.RefundDate)
}

func TestRefundApproveAmountGuard(t *testing.T) {
	f := newRefundFixture(t)

	request, err := f.svc.Create(f.guest.Username, f.createInput(99999))
	require.NoError(t, err)

	_, err = f.svc.Approve(request.ID, "payment_officer")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	// The guard fires before anything is written.
	got, err := f.store.RefundRequests().FindByID(request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RefundStatusPending, got.Status)
	booking, err := f.store.Bookings().FindByID(f.booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	payment, err := f.store.Payments().FindByBooking(f.booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, payment.PaymentStatus)
	assert.Nil(t, payment.RefundAmount)
}

func TestRefundApproveOnlyPending(t *testing.T) {
	f := newRefundFixture(t)

	request, err := f.svc.Create(f.guest.Username, f.createInput(30000))
	require.NoError(t, err)
	_, err = f.svc.Approve(request.ID, "payment_officer")
	require.NoError(t, err)

	_, err = f.svc.Approve(request.ID, "payment_officer")
	var ierr *IllegalStateError
	require.ErrorAs(t, err, &ierr)
}

func TestRefundReject(t *testing.T) {
	f := newRefundFixture(t)

	request, err := f.svc.Create(f.guest.Username, f.createInput(30000))
	require.NoError(t, err)

	rejected, err := f.svc.Reject(request.ID, "payment_officer", "No receipt provided")
	require.NoError(t, err)
	assert.Equal(t, models.RefundStatusRejected, rejected.Status)
	assert.Equal(t, "No receipt provided", rejected.Notes)

	// Rejection has no cascade.
	booking, err := f.store.Bookings().FindByID(f.booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
}

func TestRefundForEventBooking(t *testing.T) {
	f := newRefundFixture(t)

	space := models.EventSpace{
		Name: "Grand Ballroom", Capacity: 500,
		BasePrice: decimal.NewFromInt(150000),
		Status:    models.EventSpaceStatusAvailable, IsActive: true,
	}
	require.NoError(t, f.store.EventSpaces().Create(&space))

	eventSvc := NewEventBookingService(f.store, fixedClock(f.now), nil)
	event, err := eventSvc.Create(f.guest.Username, CreateEventBookingInput{
		EventSpaceID:   space.ID,
		EventType:      "CONFERENCE",
		EventDate:      date(2024, 7, 1),
		StartTime:      "10:00",
		EndTime:        "12:00",
		ExpectedGuests: 100,
	})
	require.NoError(t, err)

	in := CreateRefundRequestInput{
		BookingReference: event.BookingReference,
		BookingType:      "EVENT",
		RefundAmount:     decimal.NewFromInt(300000),
		Reason:           "Event postponed",
	}
	request, err := f.svc.Create(f.guest.Username, in)
	require.NoError(t, err)

	_, err = f.svc.Approve(request.ID, "payment_officer")
	require.NoError(t, err)

	got, err := f.store.EventBookings().FindByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EventBookingStatusCancelled, got.Status)
	payment, err := f.store.Payments().FindByEventBooking(event.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, payment.PaymentStatus)
}

func TestRefundQueries(t *testing.T) {
	f := newRefundFixture(t)

	request, err := f.svc.Create(f.guest.Username, f.createInput(30000))
	require.NoError(t, err)

	pending, err := f.svc.Pending()
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	mine, err := f.svc.ForUser(f.guest.Username)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	got, err := f.svc.ByID(request.ID)
	require.NoError(t, err)
	assert.Equal(t, request.ID, got.ID)

	_, err = f.svc.ByID(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
