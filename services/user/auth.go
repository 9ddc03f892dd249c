package user

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"consultly/models"
	"consultly/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long an issued API token stays valid.
const tokenTTL = 7 * 24 * time.Hour

// VerifyPasswordComplexity checks that the password meets complexity requirements.
func VerifyPasswordComplexity(pw string) error {
	var (
		hasMinLen = len(pw) >= 8
		hasUpper  = regexp.MustCompile(`[A-Z]`).MatchString(pw)
		hasLower  = regexp.MustCompile(`[a-z]`).MatchString(pw)
		hasNumber = regexp.MustCompile(`[0-9]`).MatchString(pw)
	)
	if !hasMinLen {
		return &utils.ValidationError{Field: "password", Message: "must be at least 8 characters long"}
	}
	if !hasUpper {
		return &utils.ValidationError{Field: "password", Message: "must include at least one uppercase letter"}
	}
	if !hasLower {
		return &utils.ValidationError{Field: "password", Message: "must include at least one lowercase letter"}
	}
	if !hasNumber {
		return &utils.ValidationError{Field: "password", Message: "must include at least one number"}
	}
	return nil
}

// Register creates the account and signs it in. Public signup can create
// user and provider accounts; admin accounts are provisioned separately.
func (s *DefaultUserService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, &utils.ValidationError{Message: "name, email and password are required"}
	}
	if req.Role == models.RoleAdmin {
		return nil, &utils.ValidationError{Field: "role", Message: "admin accounts cannot self-register"}
	}
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         req.Role,
		Phone:        req.Phone,
		Specialty:    req.Specialty,
		Bio:          req.Bio,
	}
	if err := s.Repo.Create(&userObj); err != nil {
		return nil, err
	}

	return s.issueToken(&userObj)
}

// Authenticate verifies credentials and issues a fresh token, replacing any
// token the account held before.
func (s *DefaultUserService) Authenticate(req models.LoginRequest) (*models.AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, &utils.UnauthorizedError{Message: "invalid email or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(req.Password)); err != nil {
		return nil, &utils.UnauthorizedError{Message: "invalid email or password"}
	}

	return s.issueToken(userRec)
}

// RevokeAuthToken clears the stored token hash and drops the cached copy, so
// the next request with the old token falls through to a hash mismatch.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := s.Repo.UpdateAuthToken(userID, ""); err != nil {
		return err
	}
	client := utils.GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("RevokeAuthToken: failed to clear auth cache",
			zap.String("userID", userID), zap.Error(err))
	}
	return nil
}

// issueToken generates a JWT for the account, persists its hash for
// revocation checks, and primes the auth cache.
func (s *DefaultUserService) issueToken(userRec *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(userRec.ID, userRec.Email, userRec.Role, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("issueToken: failed to generate token",
			zap.String("userID", userRec.ID), zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateAuthToken(userRec.ID, tokenHash); err != nil {
		utils.GetLogger().Error("issueToken: failed to persist token hash",
			zap.String("userID", userRec.ID), zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	client := utils.GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Set(ctx, utils.AuthCachePrefix+userRec.ID, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to cache token hash",
			zap.String("userID", userRec.ID), zap.Error(err))
	}

	return &models.AuthResponse{
		ID:           userRec.ID,
		Name:         userRec.Name,
		Email:        userRec.Email,
		Role:         userRec.Role,
		Token:        token,
		ProfileImage: userRec.ProfileImage,
	}, nil
}
