package models

// ReminderPayload is the asynq task body for a scheduled consultation
// reminder. Only the booking id travels through the queue; the worker
// re-reads the booking so stale reminders for cancelled consultations are
// dropped at delivery time.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
}
