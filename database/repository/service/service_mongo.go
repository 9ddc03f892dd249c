package serviceRepo

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

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	repo := &MongoServiceRepo{coll: database.Collection("services")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("services: failed to create indexes", zap.Error(err))
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoServiceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	return nil
}

func (r *MongoServiceRepo) Create(s *models.Service) error {
	switch {
	case s.Name == "":
		return &utils.ValidationError{Field: "name", Message: "is required"}
	case s.Price <= 0:
		return &utils.ValidationError{Field: "price", Message: "must be greater than zero"}
	case s.DurationMinutes <= 0:
		return &utils.ValidationError{Field: "durationMinutes", Message: "must be greater than zero"}
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &utils.ConflictError{Resource: "service", Message: fmt.Sprintf("service %q already exists", s.Name)}
		}
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *MongoServiceRepo) GetByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &utils.NotFoundError{Resource: "service", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return &s, nil
}

func (r *MongoServiceRepo) Update(id string, upd models.ServiceUpdate) (*models.Service, error) {
	current, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, &utils.ValidationError{Field: "name", Message: "must not be empty"}
		}
		current.Name = *upd.Name
		set["name"] = current.Name
	}
	if upd.Description != nil {
		current.Description = *upd.Description
		set["description"] = current.Description
	}
	if upd.Price != nil {
		if *upd.Price <= 0 {
			return nil, &utils.ValidationError{Field: "price", Message: "must be greater than zero"}
		}
		current.Price = *upd.Price
		set["price"] = current.Price
	}
	if upd.DurationMinutes != nil {
		if *upd.DurationMinutes <= 0 {
			return nil, &utils.ValidationError{Field: "durationMinutes", Message: "must be greater than zero"}
		}
		current.DurationMinutes = *upd.DurationMinutes
		set["durationMinutes"] = current.DurationMinutes
	}
	if upd.Active != nil {
		current.Active = *upd.Active
		set["active"] = current.Active
	}
	if len(set) == 0 {
		return current, nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	current.UpdatedAt = time.Now()
	set["updatedAt"] = current.UpdatedAt

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &utils.ConflictError{Resource: "service", Message: fmt.Sprintf("service %q already exists", current.Name)}
		}
		return nil, fmt.Errorf("failed to update service %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return nil, &utils.NotFoundError{Resource: "service", ID: id}
	}
	return current, nil
}

func (r *MongoServiceRepo) List(activeOnly bool) ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if activeOnly {
		query["active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (r *MongoServiceRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return &utils.NotFoundError{Resource: "service", ID: id}
	}
	return nil
}
