package noteRepo

import (
	"context"

	"consultly/database"
	"consultly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// NoteRepository defines data access for provider-authored consultation notes.
type NoteRepository interface {
	Create(ctx context.Context, note models.Note) (string, error)
	GetByID(ctx context.Context, id string) (*models.Note, error)
	ListByUser(ctx context.Context, userID string, page, limit int) ([]models.Note, error)
	ListByBooking(ctx context.Context, bookingID string) ([]models.Note, error)
	Update(ctx context.Context, id, title, content string) (*models.Note, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoNoteRepo struct {
	coll *mongo.Collection
}

// NewMongoNoteRepo returns a new NoteRepository instance using MongoDB.
func NewMongoNoteRepo() NoteRepository {
	return &mongoNoteRepo{
		coll: database.Collection("notes"),
	}
}
