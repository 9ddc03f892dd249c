package resumeRepo

import (
	"consultly/models"
)

// ResumeRepository defines data access for user resumes. Each user owns at
// most one resume document; writes are upserts keyed by userId.
type ResumeRepository interface {
	// Upsert creates or replaces the resume for resume.UserID.
	Upsert(resume *models.Resume) error
	// GetByUserID retrieves the resume owned by the given user.
	GetByUserID(userID string) (*models.Resume, error)
	// DeleteByUserID removes the resume owned by the given user.
	DeleteByUserID(userID string) error
}
