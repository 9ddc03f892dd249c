package resumeRepo

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
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoResumeRepo implements ResumeRepository using MongoDB.
type MongoResumeRepo struct {
	coll *mongo.Collection
}

// NewMongoResumeRepo creates a new instance of ResumeRepository using MongoDB.
func NewMongoResumeRepo() ResumeRepository {
	repo := &MongoResumeRepo{coll: database.Collection("resumes")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("resumes: failed to create indexes", zap.Error(err))
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoResumeRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create resume indexes: %w", err)
	}
	return nil
}

// Upsert creates or replaces the resume for resume.UserID, preserving the
// original document ID and creation time on replacement.
func (r *MongoResumeRepo) Upsert(resume *models.Resume) error {
	if resume.UserID == "" {
		return &utils.ValidationError{Field: "userId", Message: "is required"}
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	existing, err := r.GetByUserID(resume.UserID)
	if err == nil {
		resume.ID = existing.ID
		resume.CreatedAt = existing.CreatedAt
	} else if utils.IsNotFound(err) {
		resume.ID = uuid.New().String()
		resume.CreatedAt = now
	} else {
		return err
	}
	resume.UpdatedAt = now

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"userId": resume.UserID}, resume, opts); err != nil {
		return fmt.Errorf("failed to upsert resume for user %s: %w", resume.UserID, err)
	}
	return nil
}

func (r *MongoResumeRepo) GetByUserID(userID string) (*models.Resume, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var resume models.Resume
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&resume); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &utils.NotFoundError{Resource: "resume", ID: userID}
		}
		return nil, fmt.Errorf("failed to fetch resume for user %s: %w", userID, err)
	}
	return &resume, nil
}

func (r *MongoResumeRepo) DeleteByUserID(userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return fmt.Errorf("failed to delete resume for user %s: %w", userID, err)
	}
	if res.DeletedCount == 0 {
		return &utils.NotFoundError{Resource: "resume", ID: userID}
	}
	return nil
}
