package user

import (
	"consultly/models"

	userRepo "consultly/database/repository/user"
)

// UserService covers account lifecycle: registration, credential
// authentication, token revocation, and profile management.
type UserService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Authenticate(req models.LoginRequest) (*models.AuthResponse, error)
	// RevokeAuthToken invalidates the account's current token everywhere:
	// the stored hash is cleared and the auth cache entry dropped.
	RevokeAuthToken(userID string) error

	GetByID(userID string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdateProfile(userID string, upd models.UserUpdate) (*models.User, error)
	ChangePassword(userID, currentPassword, newPassword string) error
	SetProfileImage(userID, url string) (*models.User, error)
	Delete(userID string) error
	List(role string, page, limit int) ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func NewDefaultUserService(repo userRepo.UserRepository) UserService {
	return &DefaultUserService{Repo: repo}
}
