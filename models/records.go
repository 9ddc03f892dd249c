package models

import "time"

// Note is a consultation note a provider keeps about a user, optionally tied
// to a specific booking.
type Note struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"userId" json:"userId"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	BookingID  string    `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	Title      string    `bson:"title" json:"title"`
	Content    string    `bson:"content" json:"content"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NoteRequest creates or replaces the body of a note.
type NoteRequest struct {
	UserID    string `json:"userId"`
	BookingID string `json:"bookingId,omitempty"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}
