package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldenpalm/resort_backend/models"
)

type recordingPusher struct {
	pushed []uuid.UUID
}

func (p *recordingPusher) Push(userID uuid.UUID, n *models.Notification) {
	p.pushed = append(p.pushed, userID)
}

func newNotificationFixture(t *testing.T) (*memStore, *NotificationService, *recordingPusher, models.User) {
	t.Helper()
	store := newMemStore()
	guest := models.User{Username: "john_doe", Email: "john@example.com", Role: models.RoleGuest, IsActive: true}
	require.NoError(t, store.Users().Create(&guest))

	pusher := &recordingPusher{}
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	return store, NewNotificationService(store, fixedClock(now), pusher), pusher, guest
}

func TestNotificationNotify(t *testing.T) {
	store, svc, pusher, guest := newNotificationFixture(t)

	refID := uuid.New()
	err := svc.Notify(guest.ID, models.NotificationTypeBookingUpdate,
		"Booking confirmed", "Your booking has been confirmed.", &refID, models.ReferenceTypeBooking)
	require.NoError(t, err)

	list, err := store.Notifications().ListByUser(guest.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].IsRead)
	assert.Nil(t, list[0].ReadAt)
	require.NotNil(t, list[0].ReferenceID)
	assert.Equal(t, refID, *list[0].ReferenceID)

	require.Len(t, pusher.pushed, 1)
	assert.Equal(t, guest.ID, pusher.pushed[0])
}

func TestNotificationSend(t *testing.T) {
	_, svc, pusher, guest := newNotificationFixture(t)

	n, err := svc.Send(guest.Username, "backoffice", models.NotificationTypeGeneral,
		"Pool maintenance", "The pool is closed on Friday.")
	require.NoError(t, err)
	assert.Equal(t, "backoffice", n.SentBy)
	assert.Len(t, pusher.pushed, 1)

	_, err = svc.Send("nobody", "backoffice", models.NotificationTypeGeneral, "x", "y")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNotificationMarkRead(t *testing.T) {
	store, svc, _, guest := newNotificationFixture(t)

	require.NoError(t, svc.Notify(guest.ID, models.NotificationTypeGeneral, "Hello", "Welcome.", nil, ""))
	list, err := store.Notifications().ListByUser(guest.ID)
	require.NoError(t, err)
	id := list[0].ID

	n, err := svc.MarkRead(id, guest.Username)
	require.NoError(t, err)
	assert.True(t, n.IsRead)
	require.NotNil(t, n.ReadAt, "the read flag and timestamp change together")

	// Marking twice is a no-op, not an error.
	again, err := svc.MarkRead(id, guest.Username)
	require.NoError(t, err)
	assert.Equal(t, n.ReadAt, again.ReadAt)
}

func TestNotificationMarkReadOwnership(t *testing.T) {
	store, svc, _, guest := newNotificationFixture(t)

	other := models.User{Username: "jane_doe", Email: "jane@example.com", Role: models.RoleGuest, IsActive: true}
	require.NoError(t, store.Users().Create(&other))

	require.NoError(t, svc.Notify(guest.ID, models.NotificationTypeGeneral, "Hello", "Welcome.", nil, ""))
	list, err := store.Notifications().ListByUser(guest.ID)
	require.NoError(t, err)

	_, err = svc.MarkRead(list[0].ID, other.Username)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestNotificationMarkAllReadAndUnreadCount(t *testing.T) {
	_, svc, _, guest := newNotificationFixture(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Notify(guest.ID, models.NotificationTypeGeneral, "Hello", "Welcome.", nil, ""))
	}

	count, err := svc.UnreadCount(guest.Username)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	marked, err := svc.MarkAllRead(guest.Username)
	require.NoError(t, err)
	assert.Equal(t, 3, marked)

	count, err = svc.UnreadCount(guest.Username)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	marked, err = svc.MarkAllRead(guest.Username)
	require.NoError(t, err)
	assert.Equal(t, 0, marked)
}
