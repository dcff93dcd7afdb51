package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goldenpalm/resort_backend/models"
)

// Flat add-on fees in LKR, charged only when the event space actually offers
// the service.
var (
	CateringFee    = decimal.NewFromInt(50000)
	AudioVisualFee = decimal.NewFromInt(25000)
)

// RoomTotal prices a stay at basePrice per night. Nights are whole days
// between check-in and check-out; upstream validation rejects same-day stays,
// so the minimum of one night is a safety floor, not a reachable case.
func RoomTotal(basePrice decimal.Decimal, checkIn, checkOut time.Time) decimal.Decimal {
	nights := int64(dateOnly(checkOut).Sub(dateOnly(checkIn)).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return basePrice.Mul(decimal.NewFromInt(nights))
}

// EventTotal prices an event at basePrice per hour plus flat add-on fees.
// Hours are computed at hour granularity from "HH:MM" times; a non-positive
// difference is treated as crossing midnight and wrapped by 24.
func EventTotal(space *models.EventSpace, startTime, endTime string, cateringRequired, audioVisualRequired bool) decimal.Decimal {
	hours := hourOf(endTime) - hourOf(startTime)
	if hours <= 0 {
		hours += 24
	}

	total := space.BasePrice.Mul(decimal.NewFromInt(int64(hours)))
	if cateringRequired && space.CateringAvailable {
		total = total.Add(CateringFee)
	}
	if audioVisualRequired && space.AudioVisualEquipment {
		total = total.Add(AudioVisualFee)
	}
	return total
}

func hourOf(hhmm string) int {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0
	}
	return t.Hour()
}
