package jobs

import (
	"log"

	"github.com/goldenpalm/resort_backend/database"
	"github.com/goldenpalm/resort_backend/services"
	"github.com/goldenpalm/resort_backend/websocket"
)

// RollEventBookings advances event bookings whose scheduled times have
// passed: CONFIRMED events start, IN_PROGRESS events complete.
func RollEventBookings() {
	log.Println("Running job: RollEventBookings...")

	store := services.NewGormStore(database.DB)
	notify := services.NewNotificationService(store, nil, websocket.Hub{})
	svc := services.NewEventBookingService(store, nil, notify.NotifyFunc())

	moved, err := svc.RollTransitions()
	if err != nil {
		log.Printf("Error rolling event bookings: %v", err)
		return
	}
	if moved > 0 {
		log.Printf("Advanced %d event booking(s).", moved)
	}
}
