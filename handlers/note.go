package handlers

import (
	"net/http"
	"strconv"

	"consultly/middleware"
	"consultly/models"
	"consultly/services/note"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteHandler serves provider consultation notes.
type NoteHandler struct {
	Notes note.NoteService
}

// CreateNoteHandler handles POST /api/notes (provider).
func (h *NoteHandler) CreateNoteHandler(c *gin.Context) {
	providerID := c.GetString(middleware.ContextUserID)
	if providerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req models.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Notes.Create(c.Request.Context(), providerID, req)
	if err != nil {
		getLogger(c).Warn("Note creation failed", zap.String("providerID", providerID), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Note created", "data": created})
}

// GetNoteHandler handles GET /api/notes/:id.
func (h *NoteHandler) GetNoteHandler(c *gin.Context) {
	n, err := h.Notes.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Note", "data": n})
}

// ListNotesByUserHandler handles GET /api/notes/user/:userId?page=&limit=.
func (h *NoteHandler) ListNotesByUserHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	notes, err := h.Notes.ListByUser(c.Request.Context(), c.Param("userId"), page, limit)
	if err != nil {
		getLogger(c).Error("Failed to list notes", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Notes", "data": notes})
}

// ListNotesByBookingHandler handles GET /api/notes/booking/:bookingId.
func (h *NoteHandler) ListNotesByBookingHandler(c *gin.Context) {
	notes, err := h.Notes.ListByBooking(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		getLogger(c).Error("Failed to list booking notes", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Notes", "data": notes})
}

// UpdateNoteHandler handles PUT /api/notes/:id (authoring provider only).
func (h *NoteHandler) UpdateNoteHandler(c *gin.Context) {
	providerID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Notes.Update(c.Request.Context(), id, providerID, req.Title, req.Content)
	if err != nil {
		getLogger(c).Warn("Note update failed", zap.String("noteID", id), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Note updated", "data": updated})
}

// DeleteNoteHandler handles DELETE /api/notes/:id (authoring provider only).
func (h *NoteHandler) DeleteNoteHandler(c *gin.Context) {
	providerID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	if err := h.Notes.Delete(c.Request.Context(), id, providerID); err != nil {
		getLogger(c).Warn("Note delete failed", zap.String("noteID", id), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Note deleted"})
}
