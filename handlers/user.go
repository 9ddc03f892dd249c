package handlers

import (
	"net/http"
	"strconv"

	"consultly/middleware"
	"consultly/models"
	"consultly/services/storage"
	"consultly/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves profile self-service and admin account management.
type UserHandler struct {
	UserService user.UserService
	Storage     storage.StorageService
}

// GetProfileHandler returns the authenticated user's profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	profile, err := h.UserService.GetByID(userID)
	if err != nil {
		logger.Error("Failed to get user profile", zap.String("userID", userID), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile", "data": profile})
}

// UpdateProfileHandler updates the authenticated user's profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var upd models.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.UserService.UpdateProfile(userID, upd)
	if err != nil {
		logger.Error("Failed to update profile", zap.String("userID", userID), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated", "data": updated})
}

// ChangePasswordHandler handles PUT /api/users/me/password.
func (h *UserHandler) ChangePasswordHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	if err := h.UserService.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		getLogger(c).Warn("Password change failed", zap.String("userID", userID), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated"})
}

// UploadProfileImageHandler accepts a multipart image and stores it with the
// media provider; the resulting URL lands on the user record.
func (h *UserHandler) UploadProfileImageHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}
	if h.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "image storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "image file not provided"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "could not read uploaded file"})
		return
	}
	defer file.Close()

	url, err := h.Storage.UploadProfileImage(c.Request.Context(), file)
	if err != nil {
		logger.Error("Profile image upload failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "image upload failed"})
		return
	}

	updated, err := h.UserService.SetProfileImage(userID, url)
	if err != nil {
		logger.Error("Failed to store profile image url", zap.String("userID", userID), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile image updated", "data": updated})
}

// GetUserByIDHandler handles GET /api/users/:id (admin).
func (h *UserHandler) GetUserByIDHandler(c *gin.Context) {
	id := c.Param("id")
	usr, err := h.UserService.GetByID(id)
	if err != nil {
		getLogger(c).Warn("User not found", zap.String("id", id), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User", "data": usr})
}

// ListUsersHandler handles GET /api/users?role=&page=&limit= (admin).
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	users, err := h.UserService.List(c.Query("role"), page, limit)
	if err != nil {
		getLogger(c).Error("Failed to list users", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Users", "data": users})
}

// DeleteUserHandler handles DELETE /api/users/:id (admin).
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.UserService.Delete(id); err != nil {
		getLogger(c).Error("Delete error", zap.String("id", id), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted"})
}
