package bookingRepo

import (
	"consultly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines persistence operations for bookings.
//
// Implementations must refuse any write that would leave a meeting link on a
// booking whose payment has not succeeded. The check runs on the record as it
// would exist after the write, so a partial update that flips paymentStatus
// away from success while a link is present is rejected the same way as an
// update that adds a link too early.
type BookingRepository interface {
	// Create validates and inserts a new booking.
	Create(b *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// Update applies a partial update and returns the merged record.
	Update(id string, upd models.BookingUpdate) (*models.Booking, error)
	// Delete removes a booking by its unique ID.
	Delete(id string) error
	// List retrieves bookings matching the filter, newest first.
	List(filter models.BookingFilter) ([]models.Booking, error)

	// SetMeetingLink exposes a session join link on the booking. Subject to
	// the same payment gate as Update.
	SetMeetingLink(id, joinURL string) error

	// Count returns the number of bookings matching the raw filter.
	Count(filter bson.M) (int64, error)
	// CountByStatus groups bookings by bookingStatus.
	CountByStatus() (map[string]int64, error)
	// Recent returns the most recently created bookings, up to limit.
	Recent(limit int) ([]models.Booking, error)
	// RevenueTotal sums the amounts of successfully paid bookings.
	RevenueTotal() (float64, error)
}
