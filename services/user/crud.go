package user

import (
	"context"
	"time"

	"consultly/models"
	"consultly/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultUserService) GetByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

func (s *DefaultUserService) GetByEmail(email string) (*models.User, error) {
	return s.Repo.GetByEmail(email)
}

func (s *DefaultUserService) UpdateProfile(userID string, upd models.UserUpdate) (*models.User, error) {
	return s.Repo.Update(userID, upd)
}

// ChangePassword verifies the current password before storing the new hash.
// Outstanding tokens stay valid; callers wanting a forced re-login follow up
// with RevokeAuthToken.
func (s *DefaultUserService) ChangePassword(userID, currentPassword, newPassword string) error {
	existing, err := s.Repo.GetByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(currentPassword)); err != nil {
		return &utils.UnauthorizedError{Message: "current password is incorrect"}
	}
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("ChangePassword: failed to hash password",
			zap.String("userID", userID), zap.Error(err))
		return &utils.ValidationError{Field: "password", Message: "could not be processed"}
	}
	return s.Repo.UpdatePasswordHash(userID, string(newHash))
}

func (s *DefaultUserService) SetProfileImage(userID, url string) (*models.User, error) {
	if err := s.Repo.SetProfileImage(userID, url); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(userID)
}

// Delete removes the account and best-effort clears its auth cache entry.
func (s *DefaultUserService) Delete(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return err
	}
	client := utils.GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("Delete: failed to clear auth cache for removed user",
			zap.String("userID", userID), zap.Error(err))
	}
	return nil
}

func (s *DefaultUserService) List(role string, page, limit int) ([]models.User, error) {
	return s.Repo.List(role, page, limit)
}
