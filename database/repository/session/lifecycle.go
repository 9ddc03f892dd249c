package sessionRepo

import (
	"fmt"
	"time"

	"consultly/models"
	"consultly/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// MarkOngoing flips a scheduled session to ongoing when its meeting starts.
// Meetings we have no record of, and sessions already ongoing or completed,
// are left alone.
func (r *MongoSessionRepo) MarkOngoing(meetingID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"meetingId": meetingID, "status": models.SessionScheduled},
		bson.M{"$set": bson.M{
			"status":    models.SessionOngoing,
			"updatedAt": time.Now(),
		}})
	if err != nil {
		return fmt.Errorf("failed to mark session ongoing for meeting %s: %w", meetingID, err)
	}
	return nil
}

// RecordEnd stamps the actual end of the meeting. The status is left as is
// because completion is driven by the recording, not by the meeting ending.
func (r *MongoSessionRepo) RecordEnd(meetingID string, endedAt time.Time) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"meetingId": meetingID},
		bson.M{"$set": bson.M{
			"endTime":   endedAt,
			"updatedAt": time.Now(),
		}})
	if err != nil {
		return fmt.Errorf("failed to record session end for meeting %s: %w", meetingID, err)
	}
	return nil
}

// completionChanges computes the $set document that completing a session
// with the given recording URL would apply. An empty map means the event is
// a repeat and both the session and its booking must stay untouched.
func completionChanges(s *models.ZoomSession, recordingURL string) bson.M {
	changes := bson.M{}
	if s.Status != models.SessionCompleted {
		changes["status"] = models.SessionCompleted
	}
	if recordingURL != "" && s.RecordingURL != recordingURL {
		changes["recordingUrl"] = recordingURL
	}
	return changes
}

// Complete marks the session completed and denormalizes the outcome onto the
// owning booking: bookingStatus becomes completed and the recording link is
// exposed when one was captured. The two writes are sequential and
// best-effort; a propagation failure is logged, not raised, so the provider
// does not retry an event we already absorbed.
func (r *MongoSessionRepo) Complete(meetingID, recordingURL string) (*models.ZoomSession, error) {
	s, err := r.GetByMeetingID(meetingID)
	if err != nil {
		return nil, err
	}

	changes := completionChanges(s, recordingURL)
	if len(changes) == 0 {
		return s, nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	changes["updatedAt"] = now
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": s.ID}, bson.M{"$set": changes}); err != nil {
		return nil, fmt.Errorf("failed to complete session for meeting %s: %w", meetingID, err)
	}
	s.Status = models.SessionCompleted
	if recordingURL != "" {
		s.RecordingURL = recordingURL
	}
	s.UpdatedAt = now

	bookingSet := bson.M{
		"bookingStatus": models.BookingCompleted,
		"updatedAt":     now,
	}
	if s.RecordingURL != "" {
		bookingSet["zoomRecordingLink"] = s.RecordingURL
	}
	if _, err := r.bookingColl.UpdateOne(ctx, bson.M{"id": s.BookingID}, bson.M{"$set": bookingSet}); err != nil {
		utils.GetLogger().Warn("session completed but booking propagation failed",
			zap.String("bookingID", s.BookingID),
			zap.String("meetingID", meetingID),
			zap.Error(err))
	}
	return s, nil
}
