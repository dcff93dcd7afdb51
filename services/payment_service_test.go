package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldenpalm/resort_backend/models"
)

func newPaymentFixture(t *testing.T) (*bookingFixture, *PaymentService, *models.Payment) {
	t.Helper()
	f := newBookingFixture(t)

	in := f.createInput()
	in.RequireApproval = true
	booking, err := f.svc.Create(f.guest.Username, in)
	require.NoError(t, err)

	payment, err := f.store.Payments().FindByBooking(booking.ID)
	require.NoError(t, err)

	return f, NewPaymentService(f.store, fixedClock(f.now)), payment
}

func TestPaymentUpdateStatus(t *testing.T) {
	_, svc, payment := newPaymentFixture(t)

	updated, err := svc.UpdateStatus(payment.ID, models.PaymentStatusCompleted, "payment_officer")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, updated.PaymentStatus)
	assert.NotNil(t, updated.PaymentDate)
	assert.Equal(t, "payment_officer", updated.ProcessedBy)

	_, err = svc.UpdateStatus(payment.ID, models.PaymentStatusRefunded, "payment_officer")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr, "refunds go through ProcessRefund, not a raw status change")

	_, err = svc.UpdateStatus(uuid.New(), models.PaymentStatusCompleted, "payment_officer")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentProcessRefundFull(t *testing.T) {
	_, svc, payment := newPaymentFixture(t)

	refunded, err := svc.ProcessRefund(payment.ID, payment.Amount, "Guest complaint", "payment_officer")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, refunded.PaymentStatus)
	require.NotNil(t, refunded.RefundAmount)
	assert.True(t, refunded.RefundAmount.Equal(payment.Amount))
	require.NotNil(t, refunded.RefundReason)
	assert.Equal(t, "Guest complaint", *refunded.RefundReason)
	assert.NotNil(t, refunded.RefundDate)
}

func TestPaymentProcessRefundPartial(t *testing.T) {
	_, svc, payment := newPaymentFixture(t)

	half := payment.Amount.Div(decimal.NewFromInt(2))
	refunded, err := svc.ProcessRefund(payment.ID, half, "One night comped", "payment_officer")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPartiallyRefunded, refunded.PaymentStatus)
	require.NotNil(t, refunded.RefundAmount)
	assert.True(t, refunded.RefundAmount.Equal(half))
}

func TestPaymentProcessRefundGuards(t *testing.T) {
	f, svc, payment := newPaymentFixture(t)

	var verr *ValidationError
	_, err := svc.ProcessRefund(payment.ID, decimal.Zero, "bad", "payment_officer")
	require.ErrorAs(t, err, &verr)

	over := payment.Amount.Add(decimal.NewFromInt(1))
	_, err = svc.ProcessRefund(payment.ID, over, "bad", "payment_officer")
	require.ErrorAs(t, err, &verr)

	got, err := f.store.Payments().FindByID(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, got.PaymentStatus)
	assert.Nil(t, got.RefundAmount)
}

func TestPaymentReport(t *testing.T) {
	f, svc, payment := newPaymentFixture(t)

	_, err := svc.UpdateStatus(payment.ID, models.PaymentStatusCompleted, "payment_officer")
	require.NoError(t, err)

	in := f.createInput()
	in.CheckInDate = date(2024, 7, 1)
	in.CheckOutDate = date(2024, 7, 2)
	booking, err := f.svc.Create(f.guest.Username, in)
	require.NoError(t, err)
	second, err := f.store.Payments().FindByBooking(booking.ID)
	require.NoError(t, err)
	_, err = svc.ProcessRefund(second.ID, decimal.NewFromInt(5000), "Comped", "payment_officer")
	require.NoError(t, err)

	report, err := svc.Report(date(2024, 5, 1), date(2024, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, report.Count)
	assert.True(t, report.Total.Equal(decimal.NewFromInt(45000)), "30000 + 15000, got %s", report.Total)
	assert.True(t, report.Refunded.Equal(decimal.NewFromInt(5000)))
	assert.True(t, report.NetRevenue.Equal(decimal.NewFromInt(40000)))

	empty, err := svc.Report(date(2023, 1, 1), date(2023, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Count)
}
