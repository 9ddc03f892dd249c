package userRepo

import (
	"consultly/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by email; (nil, nil) when no account exists.
	GetByEmail(email string) (*models.User, error)
	// Update applies a partial profile update and returns the merged record.
	Update(id string, upd models.UserUpdate) (*models.User, error)
	// UpdateAuthToken stores the hash of the active token; an empty hash
	// revokes the current session.
	UpdateAuthToken(id, tokenHash string) error
	// UpdatePasswordHash replaces the stored credential hash.
	UpdatePasswordHash(id, hash string) error
	// SetProfileImage stores the uploaded image URL on the user.
	SetProfileImage(id, url string) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// List retrieves users, optionally restricted to a role, without
	// sensitive fields.
	List(role string, page, limit int) ([]models.User, error)
	// CountByRole counts users holding the given role; empty counts all.
	CountByRole(role string) (int64, error)
}
