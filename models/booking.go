package models

import "time"

// Payment status values a booking moves through.
const (
	PaymentPending  = "pending"
	PaymentSuccess  = "success"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// Booking status values.
const (
	BookingScheduled = "scheduled"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
	BookingNoShow    = "no-show"
)

// TimeSlot is the scheduled window of a consultation.
type TimeSlot struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// Booking is the commercial record of a consultation between a customer and
// a consultant. The meeting join link is only ever exposed on a booking whose
// payment has succeeded; the booking repository enforces that on every write.
// BookingStatus flips to completed as a side effect of the attached session
// completing, never directly through the API.
type Booking struct {
	ID                string    `bson:"id" json:"id"`
	UserID            string    `bson:"userId" json:"userId"`
	ProviderID        string    `bson:"providerId" json:"providerId"`
	ServiceID         string    `bson:"serviceId" json:"serviceId"`
	Date              string    `bson:"date,omitempty" json:"date,omitempty"`
	Timeslot          TimeSlot  `bson:"timeslot" json:"timeslot"`
	Amount            float64   `bson:"amount" json:"amount"`
	PaymentStatus     string    `bson:"paymentStatus" json:"paymentStatus"`
	BookingStatus     string    `bson:"bookingStatus" json:"bookingStatus"`
	ZoomJoinLink      string    `bson:"zoomJoinLink,omitempty" json:"zoomJoinLink,omitempty"`
	ZoomRecordingLink string    `bson:"zoomRecordingLink,omitempty" json:"zoomRecordingLink,omitempty"`
	PaymentIntentID   string    `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ValidPaymentStatus reports whether s is a recognized payment status.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentSuccess, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// ValidBookingStatus reports whether s is a recognized booking status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingScheduled, BookingCompleted, BookingCancelled, BookingNoShow:
		return true
	}
	return false
}
