package handlers

import (
	"fmt"
	"net/http"

	"consultly/middleware"
	"consultly/models"
	"consultly/services/resume"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResumeHandler serves the per-user career profile and its PDF export.
type ResumeHandler struct {
	Resumes resume.ResumeService
}

// UpsertResumeHandler handles PUT /api/resumes/me.
func (h *ResumeHandler) UpsertResumeHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req models.ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	saved, err := h.Resumes.Upsert(userID, req)
	if err != nil {
		getLogger(c).Warn("Resume upsert failed", zap.String("userID", userID), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Resume saved", "data": saved})
}

// GetResumeHandler handles GET /api/resumes/me.
func (h *ResumeHandler) GetResumeHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	r, err := h.Resumes.GetByUserID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Resume", "data": r})
}

// DeleteResumeHandler handles DELETE /api/resumes/me.
func (h *ResumeHandler) DeleteResumeHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if err := h.Resumes.Delete(userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Resume deleted"})
}

// DownloadResumePDFHandler handles GET /api/resumes/me/pdf and streams the
// rendered document.
func (h *ResumeHandler) DownloadResumePDFHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	pdfBytes, err := h.Resumes.RenderPDF(userID)
	if err != nil {
		getLogger(c).Warn("Resume PDF render failed", zap.String("userID", userID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "resume.pdf"))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
