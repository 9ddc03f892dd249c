package userRepo

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

// sensitiveFields are stripped from listings; single-record fetches return
// the full document and rely on the model's json tags to keep credentials
// out of responses.
var sensitiveFields = bson.M{
	"passwordHash": 0,
	"tokenHash":    0,
	"fcmToken":     0,
}

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	repo := &MongoUserRepo{coll: database.Collection("users")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("users: failed to create indexes", zap.Error(err))
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new user document.
func (r *MongoUserRepo) Create(user *models.User) error {
	switch {
	case user.Name == "":
		return &utils.ValidationError{Field: "name", Message: "is required"}
	case user.Email == "":
		return &utils.ValidationError{Field: "email", Message: "is required"}
	case user.PasswordHash == "":
		return &utils.ValidationError{Field: "password", Message: "is required"}
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	} else if !models.ValidRole(user.Role) {
		return &utils.ValidationError{Field: "role", Message: "unrecognized value"}
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &utils.ConflictError{Resource: "user", Message: "email already registered"}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by its unique ID (full document).
func (r *MongoUserRepo) GetByID(id string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &utils.NotFoundError{Resource: "user", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email address (full document).
func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return &user, nil
}

// Update merges the partial profile update and writes the changed fields.
func (r *MongoUserRepo) Update(id string, upd models.UserUpdate) (*models.User, error) {
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
	if upd.Phone != nil {
		current.Phone = *upd.Phone
		set["phone"] = current.Phone
	}
	if upd.Specialty != nil {
		current.Specialty = *upd.Specialty
		set["specialty"] = current.Specialty
	}
	if upd.Bio != nil {
		current.Bio = *upd.Bio
		set["bio"] = current.Bio
	}
	if upd.FCMToken != nil {
		current.FCMToken = *upd.FCMToken
		set["fcmToken"] = current.FCMToken
	}
	if len(set) == 0 {
		return current, nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	current.UpdatedAt = time.Now()
	set["updatedAt"] = current.UpdatedAt

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update user with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return nil, &utils.NotFoundError{Resource: "user", ID: id}
	}
	return current, nil
}

// UpdateAuthToken stores (or clears) the hash of the active auth token.
func (r *MongoUserRepo) UpdateAuthToken(id, tokenHash string) error {
	return r.setField(id, "tokenHash", tokenHash)
}

// UpdatePasswordHash replaces the stored credential hash.
func (r *MongoUserRepo) UpdatePasswordHash(id, hash string) error {
	return r.setField(id, "passwordHash", hash)
}

// SetProfileImage stores the uploaded image URL on the user.
func (r *MongoUserRepo) SetProfileImage(id, url string) error {
	return r.setField(id, "profileImage", url)
}

func (r *MongoUserRepo) setField(id, field string, value interface{}) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		field:       value,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		return fmt.Errorf("failed to update user with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return &utils.NotFoundError{Resource: "user", ID: id}
	}
	return nil
}

// Delete removes a user document by its ID.
func (r *MongoUserRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return &utils.NotFoundError{Resource: "user", ID: id}
	}
	return nil
}

// List retrieves users, optionally restricted to a role, with sensitive
// fields projected out.
func (r *MongoUserRepo) List(role string, page, limit int) ([]models.User, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if role != "" {
		query["role"] = role
	}
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
		SetProjection(sensitiveFields).
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, u)
	}
	return users, nil
}

// CountByRole counts users holding the given role; empty counts everyone.
func (r *MongoUserRepo) CountByRole(role string) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if role != "" {
		query["role"] = role
	}
	n, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
