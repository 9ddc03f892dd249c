package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"consultly/database"
	"consultly/models"
	"consultly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MongoSessionRepo is the MongoDB implementation of SessionRepository. It
// holds a handle on the bookings collection as well, so session completion
// can denormalize status and recording link onto the owning booking.
type MongoSessionRepo struct {
	coll        *mongo.Collection
	bookingColl *mongo.Collection
}

// NewMongoSessionRepo creates a new instance of SessionRepository using MongoDB.
func NewMongoSessionRepo() SessionRepository {
	repo := &MongoSessionRepo{
		coll:        database.Collection("zoom_sessions"),
		bookingColl: database.Collection("bookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("zoom_sessions: failed to create indexes", zap.Error(err))
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSessionRepo) Create(s *models.ZoomSession) error {
	if s.BookingID == "" {
		return &utils.ValidationError{Field: "bookingId", Message: "is required"}
	}
	if s.MeetingID == "" {
		return &utils.ValidationError{Field: "meetingId", Message: "is required"}
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Status == "" {
		s.Status = models.SessionScheduled
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &utils.ConflictError{
				Resource: "session",
				Message:  fmt.Sprintf("booking %s already has a session", s.BookingID),
			}
		}
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetByBookingID returns (nil, nil) when the booking has no session yet, so
// callers can probe for existence without treating absence as a failure.
func (r *MongoSessionRepo) GetByBookingID(bookingID string) (*models.ZoomSession, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.ZoomSession
	if err := r.coll.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch session for booking %s: %w", bookingID, err)
	}
	return &s, nil
}

func (r *MongoSessionRepo) GetByMeetingID(meetingID string) (*models.ZoomSession, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.ZoomSession
	if err := r.coll.FindOne(ctx, bson.M{"meetingId": meetingID}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &utils.NotFoundError{Resource: "session", ID: meetingID}
		}
		return nil, fmt.Errorf("failed to fetch session for meeting %s: %w", meetingID, err)
	}
	return &s, nil
}

func (r *MongoSessionRepo) UpdateTimes(id string, start, end time.Time) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"startTime": start,
		"endTime":   end,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		return fmt.Errorf("failed to update session times for %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return &utils.NotFoundError{Resource: "session", ID: id}
	}
	return nil
}

func (r *MongoSessionRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return &utils.NotFoundError{Resource: "session", ID: id}
	}
	return nil
}
