package bookingRepo

import (
	"testing"
	"time"

	"consultly/models"
	"consultly/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBooking() *models.Booking {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	return &models.Booking{
		UserID:     "u1",
		ProviderID: "p1",
		ServiceID:  "s1",
		Timeslot:   models.TimeSlot{Start: start, End: start.Add(45 * time.Minute)},
		Amount:     80,
	}
}

func TestValidateNewBookingDefaults(t *testing.T) {
	b := validBooking()
	require.NoError(t, validateNewBooking(b))
	assert.Equal(t, models.PaymentPending, b.PaymentStatus)
	assert.Equal(t, models.BookingScheduled, b.BookingStatus)
}

func TestValidateNewBookingRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Booking)
	}{
		{"missing user", func(b *models.Booking) { b.UserID = "" }},
		{"missing provider", func(b *models.Booking) { b.ProviderID = "" }},
		{"missing service", func(b *models.Booking) { b.ServiceID = "" }},
		{"missing timeslot start", func(b *models.Booking) { b.Timeslot.Start = time.Time{} }},
		{"missing timeslot end", func(b *models.Booking) { b.Timeslot.End = time.Time{} }},
		{"zero amount", func(b *models.Booking) { b.Amount = 0 }},
		{"negative amount", func(b *models.Booking) { b.Amount = -5 }},
		{"bad payment status", func(b *models.Booking) { b.PaymentStatus = "maybe" }},
		{"bad booking status", func(b *models.Booking) { b.BookingStatus = "limbo" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := validBooking()
			tc.mutate(b)
			err := validateNewBooking(b)
			var ve *utils.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestValidateNewBookingLinkGate(t *testing.T) {
	b := validBooking()
	b.ZoomJoinLink = "https://zoom.us/j/123"
	err := validateNewBooking(b)
	var iv *utils.InvariantViolationError
	require.ErrorAs(t, err, &iv)

	// The same link is fine once payment has succeeded.
	b = validBooking()
	b.ZoomJoinLink = "https://zoom.us/j/123"
	b.PaymentStatus = models.PaymentSuccess
	assert.NoError(t, validateNewBooking(b))
}

func TestApplyBookingUpdateMergesFields(t *testing.T) {
	b := validBooking()
	require.NoError(t, validateNewBooking(b))

	newAmount := 120.0
	newDate := "2026-09-02"
	newStart := b.Timeslot.Start.Add(24 * time.Hour)
	newSlot := models.TimeSlot{Start: newStart, End: newStart.Add(time.Hour)}

	merged, set, err := applyBookingUpdate(*b, models.BookingUpdate{
		Amount:   &newAmount,
		Date:     &newDate,
		Timeslot: &newSlot,
	})
	require.NoError(t, err)
	assert.Equal(t, newAmount, merged.Amount)
	assert.Equal(t, newDate, merged.Date)
	assert.Equal(t, newSlot, merged.Timeslot)

	assert.Contains(t, set, "amount")
	assert.Contains(t, set, "date")
	assert.Contains(t, set, "timeslot")
	assert.Contains(t, set, "updatedAt")
	assert.NotContains(t, set, "paymentStatus")
}

func TestApplyBookingUpdateEmptyIsNoop(t *testing.T) {
	b := validBooking()
	require.NoError(t, validateNewBooking(b))

	merged, set, err := applyBookingUpdate(*b, models.BookingUpdate{})
	require.NoError(t, err)
	assert.Empty(t, set)
	assert.Equal(t, b.Amount, merged.Amount)
}

func TestApplyBookingUpdateGateOnResultingState(t *testing.T) {
	b := validBooking()
	require.NoError(t, validateNewBooking(b))

	// Adding a link while payment is still pending is rejected.
	link := "https://zoom.us/j/123"
	_, _, err := applyBookingUpdate(*b, models.BookingUpdate{ZoomJoinLink: &link})
	var iv *utils.InvariantViolationError
	require.ErrorAs(t, err, &iv)

	// Link and success together in one update pass the gate.
	success := models.PaymentSuccess
	merged, set, err := applyBookingUpdate(*b, models.BookingUpdate{
		ZoomJoinLink:  &link,
		PaymentStatus: &success,
	})
	require.NoError(t, err)
	assert.Equal(t, link, merged.ZoomJoinLink)
	assert.Contains(t, set, "zoomJoinLink")

	// Flipping payment away from success while a link is stored is rejected
	// the same way.
	paid := *validBooking()
	paid.PaymentStatus = models.PaymentSuccess
	paid.ZoomJoinLink = link
	refunded := models.PaymentRefunded
	_, _, err = applyBookingUpdate(paid, models.BookingUpdate{PaymentStatus: &refunded})
	require.ErrorAs(t, err, &iv)

	// Clearing the link in the same update makes the flip legal.
	empty := ""
	merged, _, err = applyBookingUpdate(paid, models.BookingUpdate{
		PaymentStatus: &refunded,
		ZoomJoinLink:  &empty,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRefunded, merged.PaymentStatus)
	assert.Empty(t, merged.ZoomJoinLink)
}

func TestApplyBookingUpdateRejectsBadValues(t *testing.T) {
	b := validBooking()
	require.NoError(t, validateNewBooking(b))

	bad := -1.0
	_, _, err := applyBookingUpdate(*b, models.BookingUpdate{Amount: &bad})
	var ve *utils.ValidationError
	assert.ErrorAs(t, err, &ve)

	halfSlot := models.TimeSlot{Start: b.Timeslot.Start}
	_, _, err = applyBookingUpdate(*b, models.BookingUpdate{Timeslot: &halfSlot})
	assert.ErrorAs(t, err, &ve)

	unknown := "maybe"
	_, _, err = applyBookingUpdate(*b, models.BookingUpdate{PaymentStatus: &unknown})
	assert.ErrorAs(t, err, &ve)
}
