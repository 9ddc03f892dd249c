package sessionRepo

import (
	"time"

	"consultly/models"
)

// SessionRepository defines persistence operations for video sessions.
// A booking can own at most one session; the store enforces this with a
// unique index on bookingId and reports the race loser as a conflict.
type SessionRepository interface {
	// Create validates and inserts a new session.
	Create(s *models.ZoomSession) error
	// GetByBookingID is an existence probe: it returns (nil, nil) when the
	// booking has no session.
	GetByBookingID(bookingID string) (*models.ZoomSession, error)
	// GetByMeetingID retrieves the session for a provider meeting ID.
	GetByMeetingID(meetingID string) (*models.ZoomSession, error)
	// UpdateTimes rewrites the scheduled window after a reschedule.
	UpdateTimes(id string, start, end time.Time) error
	// Delete removes a session by its unique ID.
	Delete(id string) error

	// MarkOngoing moves a scheduled session to ongoing. Unknown meeting IDs
	// and sessions already past scheduled are a no-op.
	MarkOngoing(meetingID string) error
	// RecordEnd stamps the actual end of the meeting. The session is not
	// completed here; completion waits for the recording.
	RecordEnd(meetingID string, endedAt time.Time) error
	// Complete marks the session completed, stores the recording URL when one
	// is supplied, and propagates both onto the owning booking. Safe to call
	// repeatedly.
	Complete(meetingID, recordingURL string) (*models.ZoomSession, error)
}
