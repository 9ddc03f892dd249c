package resume

import (
	"consultly/models"
	"consultly/utils"

	resumeRepo "consultly/database/repository/resume"
)

// ResumeService manages the one career profile each user keeps on the
// platform and renders it to PDF on demand.
type ResumeService interface {
	Upsert(userID string, req models.ResumeRequest) (*models.Resume, error)
	GetByUserID(userID string) (*models.Resume, error)
	Delete(userID string) error
	// RenderPDF renders the user's resume and returns the document bytes.
	RenderPDF(userID string) ([]byte, error)
}

// DefaultResumeService is the production implementation.
type DefaultResumeService struct {
	Repo resumeRepo.ResumeRepository
}

func NewDefaultResumeService(repo resumeRepo.ResumeRepository) ResumeService {
	return &DefaultResumeService{Repo: repo}
}

func (s *DefaultResumeService) Upsert(userID string, req models.ResumeRequest) (*models.Resume, error) {
	if req.FullName == "" {
		return nil, &utils.ValidationError{Field: "fullName", Message: "is required"}
	}

	resume := &models.Resume{
		UserID:     userID,
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Summary:    req.Summary,
		Skills:     req.Skills,
		Experience: req.Experience,
		Education:  req.Education,
	}
	if err := s.Repo.Upsert(resume); err != nil {
		return nil, err
	}
	return s.Repo.GetByUserID(userID)
}

func (s *DefaultResumeService) GetByUserID(userID string) (*models.Resume, error) {
	return s.Repo.GetByUserID(userID)
}

func (s *DefaultResumeService) Delete(userID string) error {
	return s.Repo.DeleteByUserID(userID)
}
