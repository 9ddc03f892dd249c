package noteRepo

import (
	"context"
	"fmt"
	"time"

	"consultly/models"
	"consultly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new note and returns its ID.
func (r *mongoNoteRepo) Create(ctx context.Context, note models.Note) (string, error) {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt

	_, err := r.coll.InsertOne(ctx, note)
	if err != nil {
		return "", fmt.Errorf("failed to create note: %w", err)
	}
	return note.ID, nil
}

// GetByID returns a note by its ID.
func (r *mongoNoteRepo) GetByID(ctx context.Context, id string) (*models.Note, error) {
	var note models.Note
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&note); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &utils.NotFoundError{Resource: "note", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch note %s: %w", id, err)
	}
	return &note, nil
}

// ListByUser fetches the notes written about a specific user, newest first.
func (r *mongoNoteRepo) ListByUser(ctx context.Context, userID string, page, limit int) ([]models.Note, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = utils.DefaultPageSize
	}
	if limit > utils.MaxPageSize {
		limit = utils.MaxPageSize
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer cursor.Close(ctx)

	var notes []models.Note
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	return notes, nil
}

// ListByBooking fetches all notes attached to a booking.
func (r *mongoNoteRepo) ListByBooking(ctx context.Context, bookingID string) ([]models.Note, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"bookingId": bookingID})
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer cursor.Close(ctx)

	var notes []models.Note
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	return notes, nil
}

// Update rewrites the title and content of a note.
func (r *mongoNoteRepo) Update(ctx context.Context, id, title, content string) (*models.Note, error) {
	note, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	note.Title = title
	note.Content = content
	note.UpdatedAt = time.Now()

	_, err = r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"title":     note.Title,
		"content":   note.Content,
		"updatedAt": note.UpdatedAt,
	}})
	if err != nil {
		return nil, fmt.Errorf("failed to update note %s: %w", id, err)
	}
	return note, nil
}

// DeleteByID removes a note by ID.
func (r *mongoNoteRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete note %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return &utils.NotFoundError{Resource: "note", ID: id}
	}
	return nil
}
