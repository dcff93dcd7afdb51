package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBookingReference(t *testing.T) {
	re := regexp.MustCompile(`^BK[0-9A-F]{8}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, re, GenerateBookingReference())
	}
}

func TestGenerateLegacyBookingReference(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	re := regexp.MustCompile(`^GP20240601\d{3}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, re, GenerateLegacyBookingReference(now))
	}
}

func TestGenerateEventBookingReference(t *testing.T) {
	now := time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)
	re := regexp.MustCompile(`^EV20241231\d{3}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, re, GenerateEventBookingReference(now))
	}
}

func TestGenerateTransactionID(t *testing.T) {
	re := regexp.MustCompile(`^TXN-[0-9A-F]{8}$`)
	assert.Regexp(t, re, GenerateTransactionID())
}
