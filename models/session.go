package models

import "time"

// Session status values. Completed is terminal: repeated completion events
// must leave the record unchanged.
const (
	SessionScheduled = "scheduled"
	SessionOngoing   = "ongoing"
	SessionCompleted = "completed"
)

// ZoomSession tracks the video-meeting instance attached to a booking,
// one per booking. The meeting id is kept as a string because the provider
// encodes it inconsistently across its API and webhook payloads.
type ZoomSession struct {
	ID           string     `bson:"id" json:"id"`
	BookingID    string     `bson:"bookingId" json:"bookingId"`
	MeetingID    string     `bson:"meetingId" json:"meetingId"`
	JoinURL      string     `bson:"joinUrl" json:"joinUrl"`
	HostURL      string     `bson:"hostUrl,omitempty" json:"hostUrl,omitempty"`
	StartTime    time.Time  `bson:"startTime" json:"startTime"`
	EndTime      *time.Time `bson:"endTime,omitempty" json:"endTime,omitempty"`
	RecordingURL string     `bson:"recordingUrl,omitempty" json:"recordingUrl,omitempty"`
	Status       string     `bson:"status" json:"status"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updatedAt"`
}
