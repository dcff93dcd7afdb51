package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goldenpalm/resort_backend/models"
)

// PaymentService covers the payment officer's surface: listing, manual status
// changes, refunds and reporting. Booking-driven payment completion lives in
// the lifecycle services, not here.
type PaymentService struct {
	store Store
	now   func() time.Time
}

func NewPaymentService(store Store, now func() time.Time) *PaymentService {
	if now == nil {
		now = time.Now
	}
	return &PaymentService{store: store, now: now}
}

func (s *PaymentService) ByID(id uuid.UUID) (*models.Payment, error) {
	payment, err := s.store.Payments().FindByID(id)
	if err != nil {
		return nil, notFoundf("payment %s", id)
	}
	return payment, nil
}

func (s *PaymentService) All() ([]models.Payment, error) {
	return s.store.Payments().ListAll()
}

func (s *PaymentService) ByStatus(status string) ([]models.Payment, error) {
	return s.store.Payments().ListByStatus(status)
}

// UpdateStatus sets the payment status directly, stamping the payment date
// when the payment completes.
func (s *PaymentService) UpdateStatus(id uuid.UUID, status, processedBy string) (*models.Payment, error) {
	var payment *models.Payment
	err := s.store.Transaction(func(st Store) error {
		var err error
		payment, err = st.Payments().FindByID(id)
		if err != nil {
			return notFoundf("payment %s", id)
		}
		switch status {
		case models.PaymentStatusPending, models.PaymentStatusCompleted, models.PaymentStatusFailed:
		default:
			return validationErrorf("invalid payment status %q", status)
		}
		payment.PaymentStatus = status
		if status == models.PaymentStatusCompleted && payment.PaymentDate == nil {
			now := s.now()
			payment.PaymentDate = &now
		}
		if processedBy != "" {
			payment.ProcessedBy = processedBy
		}
		return st.Payments().Save(payment)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// ProcessRefund records a refund against a payment. A refund equal to the
// original amount marks the payment REFUNDED, a smaller one
// PARTIALLY_REFUNDED. The amount guard runs before any mutation.
func (s *PaymentService) ProcessRefund(id uuid.UUID, amount decimal.Decimal, reason, processedBy string) (*models.Payment, error) {
	var payment *models.Payment
	err := s.store.Transaction(func(st Store) error {
		var err error
		payment, err = st.Payments().FindByID(id)
		if err != nil {
			return notFoundf("payment %s", id)
		}
		if amount.LessThanOrEqual(decimal.Zero) {
			return validationErrorf("refund amount must be greater than 0")
		}
		if amount.GreaterThan(payment.Amount) {
			return validationErrorf("refund amount cannot exceed payment amount")
		}

		now := s.now()
		payment.RefundAmount = &amount
		payment.RefundReason = &reason
		payment.RefundDate = &now
		if amount.Equal(payment.Amount) {
			payment.PaymentStatus = models.PaymentStatusRefunded
		} else {
			payment.PaymentStatus = models.PaymentStatusPartiallyRefunded
		}
		if processedBy != "" {
			payment.ProcessedBy = processedBy
		}
		return st.Payments().Save(payment)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

type PaymentReport struct {
	Count       int             `json:"count"`
	Total       decimal.Decimal `json:"total"`
	Refunded    decimal.Decimal `json:"refunded"`
	NetRevenue  decimal.Decimal `json:"net_revenue"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
}

// Report aggregates completed and refunded amounts for payments whose
// payment date falls in [from, to).
func (s *PaymentService) Report(from, to time.Time) (*PaymentReport, error) {
	payments, err := s.store.Payments().ListAll()
	if err != nil {
		return nil, err
	}
	report := &PaymentReport{
		Total: decimal.Zero, Refunded: decimal.Zero, NetRevenue: decimal.Zero,
		PeriodStart: from, PeriodEnd: to,
	}
	for _, p := range payments {
		if p.PaymentDate == nil || p.PaymentDate.Before(from) || !p.PaymentDate.Before(to) {
			continue
		}
		report.Count++
		switch p.PaymentStatus {
		case models.PaymentStatusCompleted:
			report.Total = report.Total.Add(p.Amount)
		case models.PaymentStatusRefunded, models.PaymentStatusPartiallyRefunded:
			report.Total = report.Total.Add(p.Amount)
			if p.RefundAmount != nil {
				report.Refunded = report.Refunded.Add(*p.RefundAmount)
			}
		}
	}
	report.NetRevenue = report.Total.Sub(report.Refunded)
	return report, nil
}
