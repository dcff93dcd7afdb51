package services

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/goldenpalm/resort_backend/models"
)

// Pusher delivers a freshly created notification to a connected client, if
// any. The websocket hub satisfies this.
type Pusher interface {
	Push(userID uuid.UUID, n *models.Notification)
}

type NotificationService struct {
	store  Store
	now    func() time.Time
	pusher Pusher
}

func NewNotificationService(store Store, now func() time.Time, pusher Pusher) *NotificationService {
	if now == nil {
		now = time.Now
	}
	return &NotificationService{store: store, now: now, pusher: pusher}
}

// Notify persists a notification and pushes it to the recipient if they are
// connected. Fire-and-forget: persistence errors are swallowed by callers
// that use this as a NotifyFunc.
func (s *NotificationService) Notify(userID uuid.UUID, ntype, title, message string, refID *uuid.UUID, refType string) error {
	n := &models.Notification{
		UserID:  userID,
		Type:    ntype,
		Title:   title,
		Message: message,
	}
	if refID != nil {
		n.ReferenceID = refID
		n.ReferenceType = &refType
	}
	if err := s.store.Notifications().Create(n); err != nil {
		return err
	}
	if s.pusher != nil {
		s.pusher.Push(userID, n)
	}
	return nil
}

// NotifyFunc adapts Notify for use as a lifecycle-service callback: the
// callers treat notification delivery as fire-and-forget, so failures are
// logged rather than returned.
func (s *NotificationService) NotifyFunc() NotifyFunc {
	return func(userID uuid.UUID, ntype, title, message string, refID *uuid.UUID, refType string) {
		if err := s.Notify(userID, ntype, title, message, refID, refType); err != nil {
			log.Printf("Failed to record notification for %s: %v", userID, err)
		}
	}
}

// Send is the back-office staff path: resolves the recipient by username and
// records who sent it.
func (s *NotificationService) Send(recipientUsername, sentBy, ntype, title, message string) (*models.Notification, error) {
	user, err := s.store.Users().FindByUsername(recipientUsername)
	if err != nil {
		return nil, notFoundf("user %s", recipientUsername)
	}
	n := &models.Notification{
		UserID:  user.ID,
		Type:    ntype,
		Title:   title,
		Message: message,
		SentBy:  sentBy,
	}
	if err := s.store.Notifications().Create(n); err != nil {
		return nil, err
	}
	if s.pusher != nil {
		s.pusher.Push(user.ID, n)
	}
	return n, nil
}

func (s *NotificationService) ForUser(username string) ([]models.Notification, error) {
	user, err := s.store.Users().FindByUsername(username)
	if err != nil {
		return nil, notFoundf("user %s", username)
	}
	return s.store.Notifications().ListByUser(user.ID)
}

func (s *NotificationService) UnreadCount(username string) (int64, error) {
	user, err := s.store.Users().FindByUsername(username)
	if err != nil {
		return 0, notFoundf("user %s", username)
	}
	return s.store.Notifications().CountUnread(user.ID)
}

// MarkRead flips the read flag and stamps ReadAt in the same write; the two
// always change together.
func (s *NotificationService) MarkRead(id uuid.UUID, username string) (*models.Notification, error) {
	var n *models.Notification
	err := s.store.Transaction(func(st Store) error {
		user, err := st.Users().FindByUsername(username)
		if err != nil {
			return notFoundf("user %s", username)
		}
		n, err = st.Notifications().FindByID(id)
		if err != nil {
			return notFoundf("notification %s", id)
		}
		if n.UserID != user.ID {
			return validationErrorf("notification %s does not belong to %s", id, username)
		}
		if n.IsRead {
			return nil
		}
		now := s.now()
		n.IsRead = true
		n.ReadAt = &now
		return st.Notifications().Save(n)
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NotificationService) MarkAllRead(username string) (int, error) {
	marked := 0
	err := s.store.Transaction(func(st Store) error {
		user, err := st.Users().FindByUsername(username)
		if err != nil {
			return notFoundf("user %s", username)
		}
		notifications, err := st.Notifications().ListByUser(user.ID)
		if err != nil {
			return err
		}
		now := s.now()
		for i := range notifications {
			if notifications[i].IsRead {
				continue
			}
			notifications[i].IsRead = true
			notifications[i].ReadAt = &now
			if err := st.Notifications().Save(&notifications[i]); err != nil {
				return err
			}
			marked++
		}
		return nil
	})
	return marked, err
}
