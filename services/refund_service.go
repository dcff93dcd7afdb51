package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goldenpalm/resort_backend/models"
)

// RefundService manages guest refund requests. Approval cascades: the
// underlying booking is cancelled and its payment marked REFUNDED. Rejection
// records notes only.
type RefundService struct {
	store  Store
	now    func() time.Time
	notify NotifyFunc
}

func NewRefundService(store Store, now func() time.Time, notify NotifyFunc) *RefundService {
	if now == nil {
		now = time.Now
	}
	return &RefundService{store: store, now: now, notify: notify}
}

type CreateRefundRequestInput struct {
	BookingReference  string
	BookingType       string // "ROOM" or "EVENT"
	RefundAmount      decimal.Decimal
	BankAccountNumber string
	BankName          string
	BankBranch        string
	AccountHolderName string
	Reason            string
}

func (s *RefundService) Create(username string, in CreateRefundRequestInput) (*models.RefundRequest, error) {
	if in.RefundAmount.LessThanOrEqual(decimal.Zero) {
		return nil, validationErrorf("refund amount must be greater than 0")
	}

	var request *models.RefundRequest
	err := s.store.Transaction(func(st Store) error {
		user, err := st.Users().FindByUsername(username)
		if err != nil {
			return notFoundf("user %s", username)
		}

		request = &models.RefundRequest{
			UserID:            user.ID,
			BookingReference:  in.BookingReference,
			RefundAmount:      in.RefundAmount,
			BankAccountNumber: in.BankAccountNumber,
			BankName:          in.BankName,
			BankBranch:        in.BankBranch,
			AccountHolderName: in.AccountHolderName,
			Reason:            in.Reason,
			Status:            models.RefundStatusPending,
		}

		switch in.BookingType {
		case "ROOM":
			booking, err := st.Bookings().FindByReference(in.BookingReference)
			if err != nil {
				return notFoundf("booking %s", in.BookingReference)
			}
			request.BookingID = &booking.ID
		case "EVENT":
			booking, err := st.EventBookings().FindByReference(in.BookingReference)
			if err != nil {
				return notFoundf("event booking %s", in.BookingReference)
			}
			request.EventBookingID = &booking.ID
		default:
			return validationErrorf("booking type must be ROOM or EVENT")
		}

		return st.RefundRequests().Create(request)
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// Approve accepts a PENDING refund request, cancels the underlying booking
// and marks its payment REFUNDED. The requested amount is validated against
// the payment's original amount before anything is mutated.
func (s *RefundService) Approve(id uuid.UUID, processedBy string) (*models.RefundRequest, error) {
	var request *models.RefundRequest
	err := s.store.Transaction(func(st Store) error {
		var err error
		request, err = st.RefundRequests().FindByID(id)
		if err != nil {
			return notFoundf("refund request %s", id)
		}
		if request.Status != models.RefundStatusPending {
			return &IllegalStateError{Op: "approve refund", Current: request.Status, Expected: models.RefundStatusPending}
		}

		var payment *models.Payment
		switch {
		case request.BookingID != nil:
			payment, err = st.Payments().FindByBooking(*request.BookingID)
		case request.EventBookingID != nil:
			payment, err = st.Payments().FindByEventBooking(*request.EventBookingID)
		default:
			return validationErrorf("refund request %s is not linked to a booking", id)
		}
		if err != nil {
			return notFoundf("payment for booking %s", request.BookingReference)
		}
		if request.RefundAmount.GreaterThan(payment.Amount) {
			return validationErrorf("refund amount exceeds the original payment amount")
		}

		now := s.now()
		request.Status = models.RefundStatusApproved
		request.ProcessedBy = processedBy
		request.ProcessedAt = &now

		if request.BookingID != nil {
			booking, err := st.Bookings().FindByID(*request.BookingID)
			if err != nil {
				return notFoundf("booking %s", request.BookingReference)
			}
			booking.Status = models.BookingStatusCancelled
			if err := st.Bookings().Save(booking); err != nil {
				return err
			}
		} else {
			booking, err := st.EventBookings().FindByID(*request.EventBookingID)
			if err != nil {
				return notFoundf("event booking %s", request.BookingReference)
			}
			booking.Status = models.EventBookingStatusCancelled
			if err := st.EventBookings().Save(booking); err != nil {
				return err
			}
		}

		payment.PaymentStatus = models.PaymentStatusRefunded
		payment.RefundAmount = &request.RefundAmount
		payment.RefundReason = &request.Reason
		payment.RefundDate = &now
		if err := st.Payments().Save(payment); err != nil {
			return err
		}

		return st.RefundRequests().Save(request)
	})
	if err != nil {
		return nil, err
	}

	if s.notify != nil {
		s.notify(request.UserID, models.NotificationTypeRefundApproved,
			"Refund approved for "+request.BookingReference,
			"Your refund request has been approved. The amount will be transferred to your bank account.",
			&request.ID, models.ReferenceTypeRefund)
	}

	return request, nil
}

// Reject declines a PENDING refund request with staff notes. No cascade.
func (s *RefundService) Reject(id uuid.UUID, processedBy, notes string) (*models.RefundRequest, error) {
	var request *models.RefundRequest
	err := s.store.Transaction(func(st Store) error {
		var err error
		request, err = st.RefundRequests().FindByID(id)
		if err != nil {
			return notFoundf("refund request %s", id)
		}
		if request.Status != models.RefundStatusPending {
			return &IllegalStateError{Op: "reject refund", Current: request.Status, Expected: models.RefundStatusPending}
		}
		now := s.now()
		request.Status = models.RefundStatusRejected
		request.ProcessedBy = processedBy
		request.ProcessedAt = &now
		request.Notes = notes
		return st.RefundRequests().Save(request)
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (s *RefundService) ByID(id uuid.UUID) (*models.RefundRequest, error) {
	request, err := s.store.RefundRequests().FindByID(id)
	if err != nil {
		return nil, notFoundf("refund request %s", id)
	}
	return request, nil
}

func (s *RefundService) All() ([]models.RefundRequest, error) {
	return s.store.RefundRequests().ListAll()
}

func (s *RefundService) Pending() ([]models.RefundRequest, error) {
	return s.store.RefundRequests().ListByStatus(models.RefundStatusPending)
}

func (s *RefundService) ForUser(username string) ([]models.RefundRequest, error) {
	user, err := s.store.Users().FindByUsername(username)
	if err != nil {
		return nil, notFoundf("user %s", username)
	}
	return s.store.RefundRequests().ListByUser(user.ID)
}
