package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mathrand "math/rand"
	"strings"
	"time"
)

// GenerateBookingReference returns a room booking reference of the form
// "BK" followed by 8 uppercase hex characters. Uniqueness is advisory:
// collisions are theoretically possible and the unique column constraint is
// the final arbiter.
func GenerateBookingReference() string {
	return "BK" + randomHex(4)
}

// GenerateLegacyBookingReference returns the older "GP" + YYYYMMDD + 3-digit
// reference format still present in historical records.
func GenerateLegacyBookingReference(t time.Time) string {
	return fmt.Sprintf("GP%s%03d", t.Format("20060102"), mathrand.Intn(1000))
}

// GenerateEventBookingReference returns an event booking reference of the
// form "EV" + YYYYMMDD + 3-digit random suffix.
func GenerateEventBookingReference(t time.Time) string {
	return fmt.Sprintf("EV%s%03d", t.Format("20060102"), mathrand.Intn(1000))
}

// GenerateTransactionID returns a payment transaction id of the form
// "TXN-" followed by 8 uppercase hex characters.
func GenerateTransactionID() string {
	return "TXN-" + randomHex(4)
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms; fall back anyway.
		for i := range b {
			b[i] = byte(mathrand.Intn(256))
		}
	}
	return strings.ToUpper(hex.EncodeToString(b))
}
